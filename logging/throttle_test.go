package logging

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOnce_firesExactlyOnce(t *testing.T) {
	var o Once
	assert.True(t, o.Allow())
	assert.False(t, o.Allow())
	assert.False(t, o.Allow())
}

func TestOnce_concurrentCallersSeeExactlyOneWinner(t *testing.T) {
	var o Once
	var wg sync.WaitGroup
	var wins int32
	var mu sync.Mutex
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if o.Allow() {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, wins)
}

func TestSkipFirst_suppressesExactlyN(t *testing.T) {
	s := NewSkipFirst(2)
	assert.False(t, s.Allow())
	assert.False(t, s.Allow())
	assert.True(t, s.Allow())
	assert.True(t, s.Allow())
}

func TestSkipFirst_zeroSkipsNothing(t *testing.T) {
	s := NewSkipFirst(0)
	assert.True(t, s.Allow())
}

func TestThrottle_firstCallAlwaysAllowed(t *testing.T) {
	tr := &Throttle{Interval: time.Hour}
	assert.True(t, tr.Allow())
}

func TestThrottle_suppressesWithinInterval(t *testing.T) {
	old := timeNow
	defer func() { timeNow = old }()

	now := time.Unix(1000, 0)
	timeNow = func() time.Time { return now }

	tr := &Throttle{Interval: time.Second}
	assert.True(t, tr.Allow())
	assert.False(t, tr.Allow())

	now = now.Add(2 * time.Second)
	assert.True(t, tr.Allow())
}

func TestThrottle_zeroIntervalNeverSuppresses(t *testing.T) {
	tr := &Throttle{}
	assert.True(t, tr.Allow())
	assert.True(t, tr.Allow())
}
