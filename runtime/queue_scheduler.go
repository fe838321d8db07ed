package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/furry-store/state"
)

// QueueScheduler defers store callbacks onto the loop goroutine.
// Callbacks scheduled between two flushes share a single QueueFlushMsg.
type QueueScheduler struct {
	queue   *state.Queue
	wake    PostFunc
	pending atomic.Bool
	dropped atomic.Uint64
}

// NewQueueScheduler builds a scheduler over queue that wakes the loop via wake.
// A nil queue gets a fresh one.
func NewQueueScheduler(queue *state.Queue, wake PostFunc) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{queue: queue, wake: wake}
}

// Schedule enqueues fn. The first call after a flush posts a QueueFlushMsg;
// a rejected post is counted and the next call tries again.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	if s.wake == nil || !s.pending.CompareAndSwap(false, true) {
		return
	}
	if !s.wake(QueueFlushMsg{}) {
		s.dropped.Add(1)
		s.pending.Store(false)
	}
}

// Flush runs every queued callback and re-arms the wakeup.
func (s *QueueScheduler) Flush() int {
	if s == nil {
		return 0
	}
	s.pending.Store(false)
	return s.queue.Flush()
}

// Pending returns the number of callbacks waiting for a flush.
func (s *QueueScheduler) Pending() int {
	if s == nil {
		return 0
	}
	return s.queue.Len()
}

// DroppedWakeups returns how many flush posts the loop refused.
func (s *QueueScheduler) DroppedWakeups() uint64 {
	if s == nil {
		return 0
	}
	return s.dropped.Load()
}
