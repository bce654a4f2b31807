// Package stringarray implements the string array container of spec.md
// §4.7: an array of owned, possibly-absent strings supporting resize and
// lexicographic comparison/sort.
package stringarray

import (
	"strings"

	"github.com/lattica-robotics/rcutils-go/errstate"
	"golang.org/x/exp/slices"
)

// StringArray is a fixed-length (until Resize'd) array of optional owned
// strings. A nil element models the original's null string pointer. The
// zero value is not ready for use; call Init first.
type StringArray struct {
	data        []*string
	initialized bool
}

// Init allocates a size-length array of absent (nil) string elements.
func (a *StringArray) Init(size int) error {
	if a.initialized {
		return errstate.New(errstate.InvalidArgument, "stringarray: init: already initialized")
	}
	if size < 0 {
		return errstate.New(errstate.InvalidArgument, "stringarray: init: size must not be negative")
	}
	a.data = make([]*string, size)
	a.initialized = true
	return nil
}

// New allocates and initializes a StringArray of the given size.
func New(size int) (*StringArray, error) {
	a := &StringArray{}
	if err := a.Init(size); err != nil {
		return nil, err
	}
	return a, nil
}

// Fini releases every non-nil string then the array itself. It is a no-op
// on a zero-valued or already-finalized array, and tolerates a nil backing
// slice.
func (a *StringArray) Fini() {
	if !a.initialized {
		return
	}
	*a = StringArray{}
}

// Size returns the number of slots (used or not).
func (a *StringArray) Size() int { return len(a.data) }

// Get returns the element at index, and whether it is present (non-nil).
func (a *StringArray) Get(index int) (string, bool, error) {
	if index < 0 || index >= len(a.data) {
		return "", false, errstate.New(errstate.InvalidArgument, "stringarray: get: index out of range")
	}
	if a.data[index] == nil {
		return "", false, nil
	}
	return *a.data[index], true, nil
}

// Set assigns the element at index. Passing present=false clears it to nil.
func (a *StringArray) Set(index int, value string, present bool) error {
	if index < 0 || index >= len(a.data) {
		return errstate.New(errstate.InvalidArgument, "stringarray: set: index out of range")
	}
	if !present {
		a.data[index] = nil
		return nil
	}
	v := value
	a.data[index] = &v
	return nil
}

// Resize changes the array's length. Shrinking reclaims (drops references
// to) the strings at removed indices; growing zero-initializes (nil) the
// new slots.
func (a *StringArray) Resize(newSize int) error {
	if newSize < 0 {
		return errstate.New(errstate.InvalidArgument, "stringarray: resize: new size must not be negative")
	}
	grown := make([]*string, newSize)
	copy(grown, a.data)
	a.data = grown
	return nil
}

// Cmp lexicographically compares lhs and rhs element-wise, over
// min(len(lhs), len(rhs)) elements; on a tie it compares lengths. A nil
// element in either array is an error.
func Cmp(lhs, rhs *StringArray) (int, error) {
	n := len(lhs.data)
	if len(rhs.data) < n {
		n = len(rhs.data)
	}
	for i := 0; i < n; i++ {
		l, r := lhs.data[i], rhs.data[i]
		if l == nil || r == nil {
			return 0, errstate.New(errstate.InvalidArgument, "stringarray: cmp: null string element")
		}
		if c := strings.Compare(*l, *r); c != 0 {
			return c, nil
		}
	}
	switch {
	case len(lhs.data) < len(rhs.data):
		return -1, nil
	case len(lhs.data) > len(rhs.data):
		return 1, nil
	default:
		return 0, nil
	}
}

// Sort sorts the array's elements ascending by strcmp order, with nil
// elements sorted to the end.
func (a *StringArray) Sort() {
	slices.SortStableFunc(a.data, func(l, r *string) int {
		switch {
		case l == nil && r == nil:
			return 0
		case l == nil:
			return 1
		case r == nil:
			return -1
		default:
			return strings.Compare(*l, *r)
		}
	})
}
