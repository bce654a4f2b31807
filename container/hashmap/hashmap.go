// Package hashmap implements the hash map container of spec.md §4.5:
// power-of-two bucket count, lazily-initialized per-bucket entry lists,
// 0.75 load-factor rehashing, and stable (until mutated) iteration.
//
// Buckets are array lists of entries, exactly matching spec.md's data
// model ("Each bucket is a lazily-initialised array list of entries"), using
// this module's own arraylist.ArrayList rather than a bare slice.
package hashmap

import (
	"github.com/lattica-robotics/rcutils-go/container/arraylist"
	"github.com/lattica-robotics/rcutils-go/errstate"
)

// Hasher computes a hash for a key.
type Hasher[K any] func(K) uint64

// Equal reports whether two keys are equal.
type Equal[K any] func(a, b K) bool

type entry[K any, V any] struct {
	hash  uint64
	key   K
	value V
}

// HashMap maps keys of type K to values of type V. The zero value is not
// ready for use; call Init first.
type HashMap[K any, V any] struct {
	buckets     []*arraylist.ArrayList[entry[K, V]]
	size        int
	hasher      Hasher[K]
	eq          Equal[K]
	initialized bool
}

const loadFactorThreshold = 0.75

func nextPowerOfTwo(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Init initializes the map with the given initial capacity (rounded up to
// the next power of two), hasher, and key-equality function.
func (m *HashMap[K, V]) Init(initialCapacity int, hasher Hasher[K], eq Equal[K]) error {
	if m.initialized {
		return errstate.New(errstate.InvalidArgument, "hashmap: init: already initialized")
	}
	if hasher == nil || eq == nil {
		return errstate.New(errstate.InvalidArgument, "hashmap: init: hasher and eq must not be nil")
	}
	cap_ := nextPowerOfTwo(initialCapacity)
	m.buckets = make([]*arraylist.ArrayList[entry[K, V]], cap_)
	m.size = 0
	m.hasher = hasher
	m.eq = eq
	m.initialized = true
	return nil
}

// New allocates and initializes a HashMap with the given initial capacity.
func New[K any, V any](initialCapacity int, hasher Hasher[K], eq Equal[K]) (*HashMap[K, V], error) {
	m := &HashMap[K, V]{}
	if err := m.Init(initialCapacity, hasher, eq); err != nil {
		return nil, err
	}
	return m, nil
}

// Fini releases the map's storage. It is a no-op on a zero-valued or
// already-finalized map.
func (m *HashMap[K, V]) Fini() {
	if !m.initialized {
		return
	}
	*m = HashMap[K, V]{}
}

// Size returns the number of key/value pairs currently stored.
func (m *HashMap[K, V]) Size() int { return m.size }

// Capacity returns the current bucket count, a power of two.
func (m *HashMap[K, V]) Capacity() int { return len(m.buckets) }

func (m *HashMap[K, V]) bucketIndex(hash uint64) int {
	return int(hash & uint64(len(m.buckets)-1))
}

func (m *HashMap[K, V]) findInBucket(bucket *arraylist.ArrayList[entry[K, V]], hash uint64, key K) (int, bool) {
	if bucket == nil {
		return 0, false
	}
	for i := 0; i < bucket.Size(); i++ {
		e, _ := bucket.Get(i)
		if e.hash == hash && m.eq(e.key, key) {
			return i, true
		}
	}
	return 0, false
}

// Set inserts or overwrites the value for key.
func (m *HashMap[K, V]) Set(key K, value V) error {
	if !m.initialized {
		return errstate.New(errstate.NotInitialized, "hashmap: set: not initialized")
	}
	hash := m.hasher(key)
	idx := m.bucketIndex(hash)
	bucket := m.buckets[idx]
	if bucket == nil {
		bucket, _ = arraylist.New[entry[K, V]](4)
		m.buckets[idx] = bucket
	}
	if i, ok := m.findInBucket(bucket, hash, key); ok {
		return bucket.Set(i, entry[K, V]{hash: hash, key: key, value: value})
	}
	if err := bucket.Add(entry[K, V]{hash: hash, key: key, value: value}); err != nil {
		return err
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > loadFactorThreshold {
		m.rehash()
	}
	return nil
}

// rehash doubles the bucket count and reinserts every entry. A rehash
// failure is non-fatal: spec.md requires the map to keep working with
// degraded performance, which in this Go rendition can only happen if
// growth itself panics (out of memory), so there is no explicit failure
// path to recover from here; the call simply cannot fail short of a panic.
func (m *HashMap[K, V]) rehash() {
	newCap := len(m.buckets) * 2
	newBuckets := make([]*arraylist.ArrayList[entry[K, V]], newCap)
	for _, bucket := range m.buckets {
		if bucket == nil {
			continue
		}
		for i := 0; i < bucket.Size(); i++ {
			e, _ := bucket.Get(i)
			idx := int(e.hash & uint64(newCap-1))
			nb := newBuckets[idx]
			if nb == nil {
				nb, _ = arraylist.New[entry[K, V]](4)
				newBuckets[idx] = nb
			}
			_ = nb.Add(e)
		}
	}
	m.buckets = newBuckets
}

// Get copies the value for key into the return value. The bool result
// reports whether key was found.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	var zero V
	if !m.initialized {
		return zero, false
	}
	hash := m.hasher(key)
	bucket := m.buckets[m.bucketIndex(hash)]
	if i, ok := m.findInBucket(bucket, hash, key); ok {
		e, _ := bucket.Get(i)
		return e.value, true
	}
	return zero, false
}

// KeyExists reports whether key is present. It never sets an error.
func (m *HashMap[K, V]) KeyExists(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Unset removes key, if present. A missing key is a successful no-op.
func (m *HashMap[K, V]) Unset(key K) error {
	if !m.initialized {
		return errstate.New(errstate.NotInitialized, "hashmap: unset: not initialized")
	}
	hash := m.hasher(key)
	bucket := m.buckets[m.bucketIndex(hash)]
	if i, ok := m.findInBucket(bucket, hash, key); ok {
		if err := bucket.Remove(i); err != nil {
			return err
		}
		m.size--
	}
	return nil
}

// GetNextKeyAndData implements the iteration contract of spec.md §4.5:
// passing a nil previousKey returns the first entry; passing a
// previously-returned key's pointer proceeds to the next entry in the same
// (arbitrary but, absent mutation, stable) walk order. Mutating the map
// invalidates the walk; restart with a nil previousKey.
func (m *HashMap[K, V]) GetNextKeyAndData(previousKey *K) (key K, data V, ok bool) {
	var zeroK K
	var zeroV V
	if !m.initialized {
		return zeroK, zeroV, false
	}

	found := previousKey == nil
	for _, bucket := range m.buckets {
		if bucket == nil {
			continue
		}
		for i := 0; i < bucket.Size(); i++ {
			e, _ := bucket.Get(i)
			if found {
				return e.key, e.value, true
			}
			if m.eq(e.key, *previousKey) {
				found = true
			}
		}
	}
	return zeroK, zeroV, false
}
