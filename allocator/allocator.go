// Package allocator provides the pluggable allocation abstraction that every
// container in this module is parametrised by.
//
// Go has no manual memory management, so unlike the C original this isn't a
// struct of raw function pointers plus an opaque state pointer; it's an
// interface, in the shape used by Arrow's memory.Allocator. Swapping
// allocators lets callers instrument, pool, or bound allocations made by the
// containers in this module without changing any container code.
package allocator

import (
	"fmt"
	"os"
)

// Allocator is a capability bundle: allocate, deallocate, reallocate, and
// zero-allocate. All methods must be safe for concurrent use if the
// implementation is to be shared across goroutines; the default allocator is.
type Allocator interface {
	// Allocate returns a slice of length and capacity size. It never returns
	// an error; on exhaustion Go's runtime panics, same as the teacher's
	// Arrow-derived allocator.
	Allocate(size int) []byte

	// Deallocate releases b. For the default (GC-backed) allocator this is a
	// no-op; it exists so pooling/instrumenting allocators have a hook.
	Deallocate(b []byte)

	// Reallocate returns a slice of length and capacity size, containing the
	// first min(len(b), size) bytes of b. It is the callers' responsibility
	// to stop using b afterwards.
	Reallocate(b []byte, size int) []byte

	// ZeroAllocate returns a zeroed slice of count*elemSize bytes.
	ZeroAllocate(count, elemSize int) []byte
}

type defaultAllocator struct{}

// DefaultAllocator returns the allocator that delegates to the Go heap. It is
// valid and safe to share across goroutines.
func DefaultAllocator() Allocator { return defaultAllocator{} }

func (defaultAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (defaultAllocator) Deallocate([]byte) {}

func (defaultAllocator) Reallocate(b []byte, size int) []byte {
	if size <= 0 {
		return nil
	}
	out := make([]byte, size)
	copy(out, b)
	return out
}

func (defaultAllocator) ZeroAllocate(count, elemSize int) []byte {
	if count <= 0 || elemSize <= 0 {
		return nil
	}
	return make([]byte, count*elemSize)
}

// zeroAllocator is the sentinel "zero-initialised" allocator. Using it to
// allocate or free is undefined behavior in the original C API; here every
// method panics, which is the closest Go analogue of "undefined" that still
// fails loudly instead of silently corrupting state.
type zeroAllocator struct{}

// ZeroInitializedAllocator returns the sentinel allocator value. It is not a
// valid allocator (IsValid returns false for it) and must not be used to
// allocate or free memory.
func ZeroInitializedAllocator() Allocator { return zeroAllocator{} }

func (zeroAllocator) Allocate(int) []byte            { panic("allocator: use of zero-initialized allocator") }
func (zeroAllocator) Deallocate([]byte)               { panic("allocator: use of zero-initialized allocator") }
func (zeroAllocator) Reallocate([]byte, int) []byte   { panic("allocator: use of zero-initialized allocator") }
func (zeroAllocator) ZeroAllocate(int, int) []byte    { panic("allocator: use of zero-initialized allocator") }

// IsValid reports whether a is usable. nil and the zero-initialized sentinel
// are both invalid; any other non-nil Allocator is considered valid, mirroring
// the C contract that validity is "all four function fields are non-null".
func IsValid(a Allocator) bool {
	if a == nil {
		return false
	}
	_, isZero := a.(zeroAllocator)
	return !isZero
}

// Reallocf behaves like POSIX reallocf: on reallocation failure the original
// buffer is freed and nil is returned. Go allocation failures surface as
// panics rather than nil returns, so in practice this only differs from a
// plain Reallocate call when a is invalid: in that case the original buffer
// cannot be safely freed (there is no valid Deallocate to call), so it is
// leaked and nil is returned, with a warning written to stderr.
func Reallocf(a Allocator, b []byte, size int) []byte {
	if !IsValid(a) {
		fmt.Fprintln(os.Stderr, "allocator: reallocf called with invalid allocator, leaking original buffer")
		return nil
	}
	out := a.Reallocate(b, size)
	if out == nil {
		a.Deallocate(b)
		return nil
	}
	return out
}
