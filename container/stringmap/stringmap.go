// Package stringmap implements the string-to-string map of spec.md §4.6: a
// flat array of (key, value) slots with null-key sentinels marking empty
// slots, O(capacity) linear-scan lookup, and caller-controlled growth via
// Reserve.
package stringmap

import "github.com/lattica-robotics/rcutils-go/errstate"

type pair struct {
	key   string
	value string
	used  bool
}

// StringMap maps string keys to string values, backed by a flat slice of
// slots. The zero value is not ready for use; call Init first.
type StringMap struct {
	pairs       []pair
	size        int
	initialized bool
}

// Init initializes the map with the given initial capacity (may be 0).
// Calling Init twice on an already-initialized map is an error.
func (m *StringMap) Init(initialCapacity int) error {
	if m.initialized {
		return errstate.New(errstate.StringMapAlreadyInit, "stringmap: init: already initialized")
	}
	if initialCapacity < 0 {
		return errstate.New(errstate.InvalidArgument, "stringmap: init: capacity must not be negative")
	}
	m.pairs = make([]pair, initialCapacity)
	m.size = 0
	m.initialized = true
	return nil
}

// New allocates and initializes a StringMap with the given initial capacity.
func New(initialCapacity int) (*StringMap, error) {
	m := &StringMap{}
	if err := m.Init(initialCapacity); err != nil {
		return nil, err
	}
	return m, nil
}

// Fini releases the map's storage. It is a no-op on a zero-valued or
// already-finalized map.
func (m *StringMap) Fini() {
	if !m.initialized {
		return
	}
	*m = StringMap{}
}

// Capacity returns the number of slots, used or not.
func (m *StringMap) Capacity() int {
	if !m.initialized {
		return 0
	}
	return len(m.pairs)
}

// Size returns the number of key/value pairs currently stored.
func (m *StringMap) Size() int { return m.size }

// Clear empties the map without changing its capacity.
func (m *StringMap) Clear() error {
	if !m.initialized {
		return errstate.New(errstate.StringMapInvalid, "stringmap: clear: not initialized")
	}
	for i := range m.pairs {
		m.pairs[i] = pair{}
	}
	m.size = 0
	return nil
}

// Reserve sets the map's capacity to newCapacity, preserving existing
// entries (packed into the leading slots). Shrinking below the current size
// is an error.
func (m *StringMap) Reserve(newCapacity int) error {
	if !m.initialized {
		return errstate.New(errstate.StringMapInvalid, "stringmap: reserve: not initialized")
	}
	if newCapacity < m.size {
		return errstate.New(errstate.InvalidArgument, "stringmap: reserve: new capacity smaller than current size")
	}
	grown := make([]pair, newCapacity)
	n := 0
	for _, p := range m.pairs {
		if p.used {
			grown[n] = p
			n++
		}
	}
	m.pairs = grown
	return nil
}

func (m *StringMap) find(key string) int {
	for i := range m.pairs {
		if m.pairs[i].used && m.pairs[i].key == key {
			return i
		}
	}
	return -1
}

func (m *StringMap) firstEmptySlot() int {
	for i := range m.pairs {
		if !m.pairs[i].used {
			return i
		}
	}
	return -1
}

// SetNoResize sets key to value without growing the map. If no empty slot
// is available (and key is not already present), it returns NotEnoughSpace.
func (m *StringMap) SetNoResize(key, value string) error {
	if !m.initialized {
		return errstate.New(errstate.StringMapInvalid, "stringmap: set: not initialized")
	}
	if i := m.find(key); i >= 0 {
		m.pairs[i].value = value
		return nil
	}
	i := m.firstEmptySlot()
	if i < 0 {
		return errstate.New(errstate.NotEnoughSpace, "stringmap: set: no empty slot available")
	}
	m.pairs[i] = pair{key: key, value: value, used: true}
	m.size++
	return nil
}

// Set sets key to value, doubling capacity (or setting it to 1 if it was 0)
// and retrying once if there is no room.
func (m *StringMap) Set(key, value string) error {
	err := m.SetNoResize(key, value)
	if err == nil {
		return nil
	}
	e, ok := err.(*errstate.Error)
	if !ok || e.Code != errstate.NotEnoughSpace {
		return err
	}
	newCap := m.Capacity() * 2
	if newCap == 0 {
		newCap = 1
	}
	if err := m.Reserve(newCap); err != nil {
		return err
	}
	return m.SetNoResize(key, value)
}

// Get returns the value for key, and whether it was found.
func (m *StringMap) Get(key string) (string, bool) {
	if !m.initialized {
		return "", false
	}
	if i := m.find(key); i >= 0 {
		return m.pairs[i].value, true
	}
	return "", false
}

// KeyExists reports whether key is present.
func (m *StringMap) KeyExists(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Unset removes key, if present. A missing key is a successful no-op.
func (m *StringMap) Unset(key string) error {
	if !m.initialized {
		return errstate.New(errstate.StringMapInvalid, "stringmap: unset: not initialized")
	}
	if i := m.find(key); i >= 0 {
		m.pairs[i] = pair{}
		m.size--
	}
	return nil
}

// GetNextKey implements the same null-then-previous iteration contract as
// hashmap.HashMap.GetNextKeyAndData, over this map's slot order.
func (m *StringMap) GetNextKey(previousKey *string) (string, bool) {
	if !m.initialized {
		return "", false
	}
	found := previousKey == nil
	for i := range m.pairs {
		if !m.pairs[i].used {
			continue
		}
		if found {
			return m.pairs[i].key, true
		}
		if m.pairs[i].key == *previousKey {
			found = true
		}
	}
	return "", false
}

// Copy copies every key/value pair from src into dst. On a mid-copy failure
// (which can only happen if dst runs out of room and Set's own resize
// fails), the partial copy already performed is left in dst, matching
// spec.md's documented behavior.
func Copy(src, dst *StringMap) error {
	if !src.initialized || !dst.initialized {
		return errstate.New(errstate.StringMapInvalid, "stringmap: copy: both maps must be initialized")
	}
	for i := range src.pairs {
		if !src.pairs[i].used {
			continue
		}
		if err := dst.Set(src.pairs[i].key, src.pairs[i].value); err != nil {
			return err
		}
	}
	return nil
}
