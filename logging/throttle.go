package logging

import (
	"sync"
	"time"
)

// Once gates a log call site so it fires at most one time, the Go analogue
// of RCUTILS_LOG_*_ONCE. The zero value is ready to use.
type Once struct {
	mu   sync.Mutex
	done bool
}

// Allow reports whether this call is the first, marking the gate fired if
// so. Concurrent callers race safely; exactly one sees true.
func (o *Once) Allow() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done {
		return false
	}
	o.done = true
	return true
}

// SkipFirst gates a log call site so it is suppressed for the first n
// calls and allowed from the (n+1)th call onward, the analogue of
// RCUTILS_LOG_*_SKIPFIRST. The zero value skips nothing.
type SkipFirst struct {
	mu      sync.Mutex
	n       int64
	skipped int64
}

// NewSkipFirst returns a gate that suppresses the first n calls.
func NewSkipFirst(n int64) *SkipFirst { return &SkipFirst{n: n} }

func (s *SkipFirst) Allow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.skipped < s.n {
		s.skipped++
		return false
	}
	return true
}

// Throttle gates a log call site to at most once per interval, the
// analogue of RCUTILS_LOG_*_THROTTLE. The zero value fires on every call
// (a zero interval never suppresses).
type Throttle struct {
	Interval time.Duration

	mu   sync.Mutex
	last time.Time
	init bool
}

// Allow reports whether enough time has elapsed since the last allowed
// call. The very first call always fires.
func (t *Throttle) Allow() bool {
	now := timeNow()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.init && t.Interval > 0 && now.Sub(t.last) < t.Interval {
		return false
	}
	t.last = now
	t.init = true
	return true
}
