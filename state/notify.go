package state

import (
	"slices"
	"sync"
	"sync/atomic"
)

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
// For pointer types this is identity.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

type subscriber struct {
	fn        func()
	scheduler Scheduler
	pending   atomic.Bool
}

// fire runs the callback directly, or hands it to the scheduler. A callback
// already waiting in its scheduler is not queued a second time.
func (s *subscriber) fire() {
	if s.scheduler == nil {
		s.fn()
		return
	}
	if !s.pending.CompareAndSwap(false, true) {
		return
	}
	s.scheduler.Schedule(func() {
		s.pending.Store(false)
		s.fn()
	})
}

// notifier is the subscriber registry shared by Store and Selector.
// The owner's mutex guards it.
type notifier struct {
	subs map[int]*subscriber
	next int
}

func (n *notifier) addLocked(scheduler Scheduler, fn func()) int {
	if n.subs == nil {
		n.subs = make(map[int]*subscriber)
	}
	id := n.next
	n.next++
	n.subs[id] = &subscriber{fn: fn, scheduler: scheduler}
	return id
}

func (n *notifier) snapshotLocked() []*subscriber {
	if len(n.subs) == 0 {
		return nil
	}
	ids := make([]int, 0, len(n.subs))
	for id := range n.subs {
		ids = append(ids, id)
	}
	// Subscribers fire in registration order.
	slices.Sort(ids)
	subs := make([]*subscriber, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, n.subs[id])
	}
	return subs
}

func notifyAll(subs []*subscriber) {
	for _, sub := range subs {
		if sub.fn != nil {
			sub.fire()
		}
	}
}

// unsubscribeFunc returns an idempotent func removing id under mu.
func unsubscribeFunc(mu *sync.Mutex, n *notifier, id int) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			delete(n.subs, id)
			mu.Unlock()
		})
	}
}
