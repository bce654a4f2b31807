package errstate

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the numeric id of the calling goroutine from its
// stack trace header ("goroutine 123 [running]: ..."). This is the Go
// analogue of a thread id, used only as a map key for goroutine-local error
// state; it carries no other meaning and callers must never rely on its
// value being stable across goroutine exit/reuse.
//
// The runtime does not expose this officially; parsing runtime.Stack's
// header is the same technique used by the family of goroutine-id helper
// packages that pre-date goroutine-local storage proposals.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if !bytes.HasPrefix(b, []byte(prefix)) {
		return 0
	}
	b = b[len(prefix):]

	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseInt(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
