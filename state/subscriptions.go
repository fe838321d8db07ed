package state

import "sync"

// Subscriptions collects unsubscribe callbacks so an observer can detach
// from several stores and selectors at once.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
	sched  Scheduler
}

// NewSubscriptions creates a group whose Observe calls use scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{sched: scheduler}
}

// Add tracks an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Observe subscribes fn to sub on the group's scheduler and tracks it.
// Sources without scheduler support are subscribed directly.
func (s *Subscriptions) Observe(sub Subscribable, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	s.mu.Lock()
	scheduler := s.sched
	s.mu.Unlock()
	if scheduled, ok := sub.(interface {
		SubscribeWithScheduler(Scheduler, func()) func()
	}); ok && scheduler != nil {
		s.Add(scheduled.SubscribeWithScheduler(scheduler, fn))
		return
	}
	s.Add(sub.Subscribe(fn))
}

// Len returns the number of tracked subscriptions.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	n := len(s.unsubs)
	s.mu.Unlock()
	return n
}

// Clear unsubscribes everything tracked, newest first.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for i := len(unsubs) - 1; i >= 0; i-- {
		unsubs[i]()
	}
}
