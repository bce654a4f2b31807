// Package bytebuffer implements the growable byte array and growable char
// array container types of spec.md §4.3: a buffer that grows on demand,
// optionally not owning its backing storage (in which case a resize takes
// ownership of a freshly allocated replacement), used throughout the
// logging pipeline as the per-message formatting buffer.
//
// The growth pattern (append-and-reslice against a pooled backing array) is
// the same one the teacher's stumpy.Event uses for its JSON buffer
// (logiface/stumpy/logger.go, logiface/stumpy/event.go): grow the backing
// array, never shrink it on every operation, only on explicit resize.
package bytebuffer

import (
	"github.com/lattica-robotics/rcutils-go/allocator"
	"github.com/lattica-robotics/rcutils-go/errstate"
)

// core is the shared state and growth logic behind ByteArray and CharArray.
type core struct {
	buffer     []byte
	length     int
	ownsBuffer bool
	alloc      allocator.Allocator
}

func (c *core) capacity() int { return len(c.buffer) }

func (c *core) initCore(capacity int, a allocator.Allocator) {
	if a == nil {
		a = allocator.DefaultAllocator()
	}
	c.alloc = a
	c.length = 0
	c.ownsBuffer = false
	c.buffer = nil
	if capacity > 0 {
		c.buffer = a.Allocate(capacity)
		c.ownsBuffer = true
	}
}

func (c *core) finiCore() {
	if c.ownsBuffer && c.buffer != nil {
		c.alloc.Deallocate(c.buffer)
	}
	*c = core{}
}

// resize changes the backing buffer's capacity to newSize. When
// nullTerminate is true (char array semantics), a freshly-allocated
// replacement buffer has its last copied byte forced to NUL.
func (c *core) resize(newSize int, nullTerminate bool) error {
	if newSize == 0 {
		return errstate.New(errstate.InvalidArgument, "bytebuffer: resize: new size must not be zero")
	}

	oldLength := c.length
	if c.ownsBuffer {
		grown := c.alloc.Reallocate(c.buffer, newSize)
		if grown == nil && newSize > 0 {
			// Reallocation failed: leave the existing buffer untouched.
			return errstate.New(errstate.BadAlloc, "bytebuffer: resize: reallocation failed")
		}
		c.buffer = grown
	} else {
		fresh := c.alloc.Allocate(newSize)
		n := oldLength
		if n > newSize {
			n = newSize
		}
		copy(fresh, c.buffer[:min(n, len(c.buffer))])
		if nullTerminate && n > 0 {
			fresh[n-1] = 0
		}
		c.buffer = fresh
		c.ownsBuffer = true
	}

	c.length = min(oldLength, newSize)
	return nil
}

// expandAsNeeded grows the buffer to at least newSize, using a 1.5x growth
// factor, if it isn't already large enough. It never shrinks capacity.
func (c *core) expandAsNeeded(newSize int, nullTerminate bool) error {
	if newSize <= c.capacity() {
		return nil
	}
	target := newSize
	if grown := int(float64(c.capacity()) * 1.5); grown > target {
		target = grown
	}
	return c.resize(target, nullTerminate)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
