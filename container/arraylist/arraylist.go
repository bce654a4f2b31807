// Package arraylist implements the array list container of spec.md §4.4: a
// contiguous, doubling-growth vector, storing elements by shallow copy.
//
// The original's array_list takes a data_size and stores opaque byte
// blobs; Go generics make that unnecessary, so ArrayList is parametrised by
// element type directly, in the style of the teacher's generic container
// (catrate's ringBuffer[E constraints.Ordered], catrate/ring.go), minus the
// power-of-two/ordering constraints that are specific to catrate's ring
// buffer and don't apply here.
package arraylist

import "github.com/lattica-robotics/rcutils-go/errstate"

// ArrayList is a growable, contiguous vector of T, growing by doubling
// capacity. The zero value is not ready for use; call Init first.
type ArrayList[T any] struct {
	data        []T
	size        int
	initialized bool
}

// Init initializes the list with the given initial capacity. initialCapacity
// must be >= 1. Calling Init twice on an already-initialized list is an
// error.
func (l *ArrayList[T]) Init(initialCapacity int) error {
	if l.initialized {
		return errstate.New(errstate.InvalidArgument, "arraylist: init: already initialized")
	}
	if initialCapacity < 1 {
		return errstate.New(errstate.InvalidArgument, "arraylist: init: initial capacity must be >= 1")
	}
	l.data = make([]T, 0, initialCapacity)
	l.size = 0
	l.initialized = true
	return nil
}

// New allocates and initializes an ArrayList with the given initial
// capacity.
func New[T any](initialCapacity int) (*ArrayList[T], error) {
	l := &ArrayList[T]{}
	if err := l.Init(initialCapacity); err != nil {
		return nil, err
	}
	return l, nil
}

// Fini releases the list's storage. It is a no-op on a zero-valued or
// already-finalized list.
func (l *ArrayList[T]) Fini() {
	if !l.initialized {
		return
	}
	*l = ArrayList[T]{}
}

// Size returns the number of elements currently stored.
func (l *ArrayList[T]) Size() int { return l.size }

// Capacity returns the current backing capacity. Capacity never shrinks,
// including on Remove.
func (l *ArrayList[T]) Capacity() int { return cap(l.data) }

// Add appends a shallow copy of v, growing (doubling) the backing array if
// full.
func (l *ArrayList[T]) Add(v T) error {
	if !l.initialized {
		return errstate.New(errstate.NotInitialized, "arraylist: add: not initialized")
	}
	if l.size == cap(l.data) {
		grown := make([]T, l.size, cap(l.data)*2)
		copy(grown, l.data)
		l.data = grown
	}
	l.data = l.data[:l.size+1]
	l.data[l.size] = v
	l.size++
	return nil
}

// Set overwrites the element at index with a shallow copy of v. index must
// be < Size().
func (l *ArrayList[T]) Set(index int, v T) error {
	if index < 0 || index >= l.size {
		return errstate.New(errstate.InvalidArgument, "arraylist: set: index out of range")
	}
	l.data[index] = v
	return nil
}

// Get copies the element at index out. index must be < Size().
func (l *ArrayList[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, errstate.New(errstate.InvalidArgument, "arraylist: get: index out of range")
	}
	return l.data[index], nil
}

// Remove deletes the element at index, compacting subsequent elements left
// by one slot. Capacity is unchanged.
func (l *ArrayList[T]) Remove(index int) error {
	if index < 0 || index >= l.size {
		return errstate.New(errstate.InvalidArgument, "arraylist: remove: index out of range")
	}
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	var zero T
	l.data[l.size-1] = zero
	l.data = l.data[:l.size-1]
	l.size--
	return nil
}
