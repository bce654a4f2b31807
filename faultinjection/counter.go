// Package faultinjection implements the fault-injection counter of spec.md
// §4.10: a single process-wide atomic integer that drives the "fail the
// N-th allocation" test pattern.
//
// The compare-and-swap retry loop mirrors the atomic-counter style the
// teacher's catrate.Limiter uses for its per-category state
// (catrate/limiter.go uses atomic.CompareAndSwapInt64 in a retry loop over
// a *[2]int64); this package applies the same idiom to a single counter.
package faultinjection

import "sync/atomic"

// counter holds the current fault-injection count. -1 means "never fail".
var counter int64 = -1

// SetCount sets the counter to n.
func SetCount(n int64) { atomic.StoreInt64(&counter, n) }

// GetCount returns the current counter value.
func GetCount() int64 { return atomic.LoadInt64(&counter) }

// MaybeFail atomically decrements the counter, unless it is already <= -1
// (fault injection disabled), in which case it is left unchanged. It
// returns the value the counter held before this call: 0 means "fail now",
// any other non-negative value means "not this time", negative means fault
// injection is disabled.
func MaybeFail() int64 {
	for {
		current := atomic.LoadInt64(&counter)
		if current <= -1 {
			return current
		}
		if atomic.CompareAndSwapInt64(&counter, current, current-1) {
			return current
		}
	}
}

// IsTestComplete reports whether the current sweep iteration ran out of
// decrement sites before the counter could be driven negative, i.e. the
// counter still holds a value greater than NeverFail after subject ran to
// completion. That means every decrement site already got its turn to be
// the one that fails, across the preceding iterations, and the sweep can
// stop growing the count.
func IsTestComplete() bool { return GetCount() > NeverFail }
