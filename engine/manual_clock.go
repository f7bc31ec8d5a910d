package engine

import (
	"sync"
	"time"
)

// ManualClock is a Clock that only moves when told to
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock stopped at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d without firing anything
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Run advances the clock by d in increments of step, firing q after each one the way the frame loop does
// The last increment is shortened so the clock lands exactly on d; returns the number of callbacks run
func (c *ManualClock) Run(q *TimerQueue, d, step time.Duration) int {
	if step <= 0 {
		step = d
	}
	fired := 0
	for remaining := d; remaining > 0; remaining -= step {
		c.Advance(min(step, remaining))
		fired += q.Fire()
	}
	return fired
}
