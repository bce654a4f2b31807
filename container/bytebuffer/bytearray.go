package bytebuffer

import "github.com/lattica-robotics/rcutils-go/allocator"

// ByteArray is a growable buffer of raw bytes (the uint8_array of spec.md).
// The zero value is not ready for use; call Init first.
type ByteArray struct {
	core
}

// NewByteArray allocates and returns an initialized ByteArray with the given
// initial capacity. A capacity of 0 leaves the buffer unallocated.
func NewByteArray(capacity int, a allocator.Allocator) *ByteArray {
	b := &ByteArray{}
	b.initCore(capacity, a)
	return b
}

// Fini releases the buffer if it is owned. It is a no-op on a zero-valued
// or already-finalized ByteArray.
func (b *ByteArray) Fini() { b.finiCore() }

// Len returns the number of logical bytes currently stored.
func (b *ByteArray) Len() int { return b.length }

// Cap returns the current backing capacity.
func (b *ByteArray) Cap() int { return b.capacity() }

// Bytes returns the logical contents. The returned slice aliases the
// buffer's backing array and is invalidated by any mutating call.
func (b *ByteArray) Bytes() []byte { return b.buffer[:b.length] }

// Resize changes the buffer's capacity. See spec.md §4.3 for the full
// owned/non-owned contract.
func (b *ByteArray) Resize(newSize int) error { return b.resize(newSize, false) }

// ExpandAsNeeded grows the buffer to at least newSize if it isn't already
// that large, using a 1.5x growth factor. It never shrinks capacity.
func (b *ByteArray) ExpandAsNeeded(newSize int) error { return b.expandAsNeeded(newSize, false) }

// Memcpy replaces the buffer's logical contents with a copy of src,
// expanding the backing buffer first if needed.
func (b *ByteArray) Memcpy(src []byte) error {
	if err := b.expandAsNeeded(len(src), false); err != nil {
		return err
	}
	copy(b.buffer, src)
	b.length = len(src)
	return nil
}
