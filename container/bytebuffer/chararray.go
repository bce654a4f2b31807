package bytebuffer

import (
	"fmt"

	"github.com/lattica-robotics/rcutils-go/allocator"
	"github.com/lattica-robotics/rcutils-go/errstate"
)

// CharArray is a growable, NUL-terminated string buffer (the char_array of
// spec.md §4.3). The zero value is not ready for use; call Init first.
type CharArray struct {
	core
}

// NewCharArray allocates and returns an initialized CharArray with the given
// initial capacity. If capacity > 0, the first byte is allocated and
// NUL-terminated; a capacity of 0 leaves the buffer unallocated.
func NewCharArray(capacity int, a allocator.Allocator) *CharArray {
	c := &CharArray{}
	c.initCore(capacity, a)
	if capacity > 0 {
		c.buffer[0] = 0
		c.length = 1
	}
	return c
}

// Fini releases the buffer if it is owned. It is a no-op on a zero-valued
// or already-finalized CharArray.
func (c *CharArray) Fini() { c.finiCore() }

// Len returns the logical length, including the terminating NUL when a
// string is present.
func (c *CharArray) Len() int { return c.length }

// Cap returns the current backing capacity.
func (c *CharArray) Cap() int { return c.capacity() }

// String returns the buffer's contents as a Go string, excluding the
// terminating NUL.
func (c *CharArray) String() string {
	if c.length == 0 {
		return ""
	}
	return string(c.buffer[:c.length-1])
}

// Resize changes the buffer's capacity, forcibly NUL-terminating the last
// copied byte when taking ownership of a freshly allocated replacement.
func (c *CharArray) Resize(newSize int) error { return c.resize(newSize, true) }

// ExpandAsNeeded grows the buffer to at least newSize if it isn't already
// that large, using a 1.5x growth factor. It never shrinks capacity.
func (c *CharArray) ExpandAsNeeded(newSize int) error { return c.expandAsNeeded(newSize, true) }

// Memcpy replaces the buffer's logical contents with a copy of src (which
// need not be NUL-terminated), expanding the backing buffer first if needed.
func (c *CharArray) Memcpy(src []byte) error {
	if err := c.expandAsNeeded(len(src), true); err != nil {
		return err
	}
	copy(c.buffer, src)
	c.length = len(src)
	return nil
}

// Vsprintf formats into the buffer, expanding it first if the formatted
// result doesn't fit. Unlike the C original's two-pass size-then-format
// approach (forced by va_list having to be consumed twice), fmt.Sprintf
// already yields the final string in one pass, so the result is measured
// directly instead of pre-sized with a throwaway formatting pass.
func (c *CharArray) Vsprintf(format string, args ...interface{}) error {
	formatted := fmt.Sprintf(format, args...)
	needed := len(formatted) + 1
	if err := c.expandAsNeeded(needed, true); err != nil {
		return err
	}
	copy(c.buffer, formatted)
	c.buffer[len(formatted)] = 0
	c.length = needed
	return nil
}

// Strcpy replaces the buffer's contents with src, NUL-terminated.
func (c *CharArray) Strcpy(src string) error {
	needed := len(src) + 1
	if err := c.expandAsNeeded(needed, true); err != nil {
		return err
	}
	copy(c.buffer, src)
	c.buffer[len(src)] = 0
	c.length = needed
	return nil
}

// currentStringLen implements spec.md's documented off-by-one policy: a
// buffer_length of 0 means "no current string" (length 0), otherwise the
// string's length is buffer_length-1 (buffer_length includes the
// terminator whenever a string is present).
func (c *CharArray) currentStringLen() int {
	if c.length == 0 {
		return 0
	}
	return c.length - 1
}

func (c *CharArray) appendBytes(src []byte) error {
	cur := c.currentStringLen()
	needed := cur + len(src) + 1
	if err := c.expandAsNeeded(needed, true); err != nil {
		return err
	}
	copy(c.buffer[cur:], src)
	c.buffer[cur+len(src)] = 0
	c.length = needed
	return nil
}

// Strcat appends src to the buffer's current string, maintaining a single
// terminating NUL.
func (c *CharArray) Strcat(src string) error {
	return c.appendBytes([]byte(src))
}

// Strncat appends at most n bytes of src to the buffer's current string,
// maintaining a single terminating NUL.
func (c *CharArray) Strncat(src string, n int) error {
	if n < 0 {
		return errstate.New(errstate.InvalidArgument, "bytebuffer: strncat: n must not be negative")
	}
	if n > len(src) {
		n = len(src)
	}
	return c.appendBytes([]byte(src[:n]))
}
