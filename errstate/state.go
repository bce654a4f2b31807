// Package errstate implements goroutine-local error state: a fixed result
// code taxonomy, truncation-safe message/file storage, lazily cached
// formatted-string rendering, and chained-error support.
//
// Go has no thread-local storage primitive; spec.md's "thread" is modeled
// here as "goroutine", and the per-thread global is modeled as a registry
// keyed by goroutine id (see gid.go), exactly mirroring the contract:
// errors set by a producer are observable by the immediate consumer on the
// same execution context (goroutine) and no other.
package errstate

import (
	"fmt"
	"os"
	"sync"
)

const (
	// maxMessageLen mirrors the original's 768-byte message buffer.
	maxMessageLen = 768
	// maxFileLen mirrors the original's 229-byte file-name buffer.
	maxFileLen = 229
	// maxFormattedLen mirrors the original's 1024-byte formatted-string cap
	// (including the terminator, which Go strings don't need; the formatted
	// string is truncated to maxFormattedLen-1 bytes, the same 1023 usable
	// bytes as the C original).
	maxFormattedLen = 1024

	notSetString = "error not set"

	// WarnOnOverwrite, when true, causes SetErrorState to write a warning to
	// stderr if it overwrites a set error with a message that differs from
	// both the old message and its formatted string. This mirrors
	// the original's compile-time RCUTILS_REPORT_ERROR_HANDLING_ERRORS flag.
	WarnOnOverwrite = true
)

type errorState struct {
	mu sync.Mutex

	initialized bool

	message string
	file    string
	line    uint64
	isSet   bool

	cachedFormatted string
	isFormatted     bool
}

var registry sync.Map // int64 (goroutine id) -> *errorState

func stateForCurrentGoroutine() *errorState {
	id := goroutineID()
	if v, ok := registry.Load(id); ok {
		return v.(*errorState)
	}
	v, _ := registry.LoadOrStore(id, &errorState{})
	return v.(*errorState)
}

// InitializeThreadLocalStorage initializes error state for the calling
// goroutine. It is idempotent: a second call on the same goroutine is a
// no-op success, even if a is different from (or invalid relative to) a
// prior call — the allocator parameter exists for API fidelity with the
// original, which uses it to allocate the per-thread state; this Go
// rendition needs no such allocation; a nil allocator is accepted.
func InitializeThreadLocalStorage(interface{}) error {
	st := stateForCurrentGoroutine()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.initialized = true
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// SetErrorState sets the current goroutine's error state, truncating message
// and file if they exceed the original's fixed buffer sizes. It invalidates
// any cached formatted string and marks the error as set.
func SetErrorState(message, file string, line uint64) {
	st := stateForCurrentGoroutine()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.setErrorStateLocked(message, file, line)
}

func (st *errorState) setErrorStateLocked(message, file string, line uint64) {
	if !st.initialized {
		st.initialized = true
	}

	if WarnOnOverwrite && st.isSet && message != st.message && message != st.cachedFormatted {
		fmt.Fprintf(os.Stderr, "errstate: overwriting previously set error: %q with %q\n", st.message, message)
	}

	msg := truncate(message, maxMessageLen-1)
	f := truncate(file, maxFileLen-1)

	st.message = msg
	st.file = f
	st.line = line
	st.isSet = true
	st.isFormatted = false
	st.cachedFormatted = ""
}

// IsSet reports whether the calling goroutine currently has an error set.
func IsSet() bool {
	st := stateForCurrentGoroutine()
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.isSet
}

// State is a snapshot of the goroutine-local error state.
type State struct {
	Message string
	File    string
	Line    uint64
}

// GetErrorState returns a snapshot of the calling goroutine's error state,
// and whether one is set. If none is set, the returned State's contents are
// unspecified (the zero value is returned).
func GetErrorState() (State, bool) {
	st := stateForCurrentGoroutine()
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.isSet {
		return State{}, false
	}
	return State{Message: st.message, File: st.file, Line: st.line}, true
}

// ResetError clears the calling goroutine's error state.
func ResetError() {
	st := stateForCurrentGoroutine()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.isSet = false
	st.isFormatted = false
	st.cachedFormatted = ""
	st.message = ""
	st.file = ""
	st.line = 0
}

// GetErrorString returns the formatted error string for the calling
// goroutine: "error not set" if none is set, else
// "<message>, at <file>:<line>", lazily computed and cached.
func GetErrorString() string {
	st := stateForCurrentGoroutine()
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.isSet {
		return notSetString
	}
	if st.isFormatted {
		return st.cachedFormatted
	}
	formatted := fmt.Sprintf("%s, at %s:%d", st.message, st.file, st.line)
	formatted = truncate(formatted, maxFormattedLen-1)
	st.cachedFormatted = formatted
	st.isFormatted = true
	return formatted
}

// SetErrorAndAppendPrevious captures the calling goroutine's current
// formatted error string, resets it, then sets a new error whose message is
// "<message>: <previous formatted string>". If no error was previously set,
// the previous string is the "error not set" sentinel, matching
// GetErrorString's contract.
func SetErrorAndAppendPrevious(message, file string, line uint64) {
	previous := GetErrorString()
	ResetError()
	SetErrorState(fmt.Sprintf("%s: %s", message, previous), file, line)
}
