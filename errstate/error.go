package errstate

import (
	"fmt"
	"runtime"
)

// Error is the Go-idiomatic error value returned by every fallible
// operation in this module. It carries the same Code/message/location triple
// as the goroutine-local state, and setting one (via New/Newf/WrapWithLocation) also
// updates the calling goroutine's error state, satisfying spec.md's
// propagation policy ("every fallible operation returns a result code and,
// on non-OK, sets the thread-local error message") without forcing callers
// to thread a *State through every call, the way idiomatic Go error
// returns normally work.
type Error struct {
	Code    Code
	Message string
	File    string
	Line    uint64
	prev    error
}

func (e *Error) Error() string {
	if e == nil {
		return notSetString
	}
	return fmt.Sprintf("%s, at %s:%d", e.Message, e.File, e.Line)
}

// Unwrap exposes the captured previous error, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.prev }

func callerLocation(skip int) (file string, line uint64) {
	_, f, l, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return f, uint64(l)
}

// New creates an *Error with the given code and message, capturing the
// caller's file:line, and records it as the calling goroutine's current
// error state.
func New(code Code, message string) *Error {
	file, line := callerLocation(1)
	return newAt(code, message, file, line)
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(code Code, format string, args ...interface{}) *Error {
	file, line := callerLocation(1)
	return newAt(code, fmt.Sprintf(format, args...), file, line)
}

func newAt(code Code, message, file string, line uint64) *Error {
	SetErrorState(message, file, line)
	return &Error{Code: code, Message: truncate(message, maxMessageLen-1), File: truncate(file, maxFileLen-1), Line: line}
}

// WrapWithLocation captures previous's own message (or, when previous is
// nil, the current goroutine error string), resets the goroutine error
// state, and sets a new error
// of the given code whose message is "<message>: <previous>". This is the
// Go-function equivalent of the original's
// RCUTILS_SET_ERROR_MSG_AND_APPEND_PREVIOUS_ERROR-style chaining macros.
func WrapWithLocation(previous error, code Code, message string) *Error {
	var previousString string
	if previous != nil {
		previousString = previous.Error()
	} else {
		previousString = GetErrorString()
	}
	ResetError()
	file, line := callerLocation(1)
	combined := fmt.Sprintf("%s: %s", message, previousString)
	e := newAt(code, combined, file, line)
	e.prev = previous
	return e
}
