package state

import "sync"

// Scheduler decides where a subscriber callback runs.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule hands fn to the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

type inline struct{}

func (inline) Schedule(fn func()) {
	if fn != nil {
		fn()
	}
}

// DirectScheduler runs callbacks on the dispatching goroutine.
var DirectScheduler Scheduler = inline{}

// Queue defers callbacks until the owner calls Flush, typically from a
// single event-loop goroutine. A callback that schedules more work during a
// flush lands in the next batch.
type Queue struct {
	mu    sync.Mutex
	batch []func()
	spare []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule appends fn to the current batch.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.batch = append(q.batch, fn)
	q.mu.Unlock()
}

// Len reports the size of the current batch.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.batch)
}

// Flush runs the current batch in scheduling order and returns its size.
func (q *Queue) Flush() int {
	run := q.swap()
	for i, fn := range run {
		fn()
		run[i] = nil
	}
	q.recycle(run)
	return len(run)
}

// Discard drops the current batch without running it.
func (q *Queue) Discard() int {
	run := q.swap()
	clear(run)
	q.recycle(run)
	return len(run)
}

func (q *Queue) swap() []func() {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	run := q.batch
	q.batch = q.spare[:0]
	q.spare = nil
	q.mu.Unlock()
	return run
}

func (q *Queue) recycle(run []func()) {
	if q == nil || run == nil {
		return
	}
	q.mu.Lock()
	if q.spare == nil {
		q.spare = run[:0]
	}
	q.mu.Unlock()
}
