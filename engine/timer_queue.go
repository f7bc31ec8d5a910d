package engine

import (
	"container/heap"
	"time"
)

// Scheduler runs a callback once after a delay, on the loop goroutine
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerQueue is a single-threaded delayed callback queue
// Owned by the main loop; AfterFunc and Fire must be called from the same goroutine
type TimerQueue struct {
	clock   Clock
	entries timerHeap
	seq     uint64
}

type timerEntry struct {
	deadline time.Time
	seq      uint64 // insertion order breaks deadline ties
	fn       func()
}

// NewTimerQueue creates a queue reading deadlines from clock
func NewTimerQueue(clock Clock) *TimerQueue {
	return &TimerQueue{clock: clock}
}

// AfterFunc implements Scheduler
func (q *TimerQueue) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	q.seq++
	heap.Push(&q.entries, timerEntry{
		deadline: q.clock.Now().Add(d),
		seq:      q.seq,
		fn:       fn,
	})
}

// Fire runs every callback whose deadline has passed, earliest first
// Callbacks scheduled by a fired callback run in the same call if already due
// Returns the number of callbacks run
func (q *TimerQueue) Fire() int {
	now := q.clock.Now()
	fired := 0
	for q.entries.Len() > 0 && !q.entries[0].deadline.After(now) {
		e := heap.Pop(&q.entries).(timerEntry)
		e.fn()
		fired++
	}
	return fired
}

// Len returns the number of pending callbacks
func (q *TimerQueue) Len() int {
	return q.entries.Len()
}

// timerHeap implements heap.Interface ordered by deadline then sequence
type timerHeap []timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(timerEntry)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = timerEntry{}
	*h = old[:n-1]
	return e
}
