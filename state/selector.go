package state

import "sync"

// Selector is a derived view of a store. Get always recomputes from the
// current snapshot. Subscribers are notified when a store change produces a
// projected value that differs from the last one seen.
type Selector[S, T any] struct {
	store    *Store[S]
	project  func(S) T
	mu       sync.Mutex
	last     T
	equal    EqualFunc[T]
	notifier notifier
	unsub    func()
}

// NewSelector creates a selector over store.
func NewSelector[S, T any](store *Store[S], project func(S) T) *Selector[S, T] {
	return NewSelectorWithScheduler(nil, store, project)
}

// NewSelectorWithScheduler creates a selector whose reaction to store
// changes runs on scheduler.
func NewSelectorWithScheduler[S, T any](scheduler Scheduler, store *Store[S], project func(S) T) *Selector[S, T] {
	if project == nil {
		project = func(S) T {
			var zero T
			return zero
		}
	}
	sel := &Selector[S, T]{
		store:   store,
		project: project,
	}
	sel.last = project(store.State())
	if store != nil {
		sel.unsub = store.SubscribeWithScheduler(scheduler, sel.onStoreChange)
	}
	return sel
}

// SetEqualFunc configures the equality check used to suppress redundant
// notifications. Without one every store change notifies.
func (s *Selector[S, T]) SetEqualFunc(fn EqualFunc[T]) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
}

// Get projects the current store state.
func (s *Selector[S, T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	return s.project(s.store.State())
}

// Subscribe registers a listener for changes of the projected value.
func (s *Selector[S, T]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously.
func (s *Selector[S, T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.notifier.addLocked(scheduler, fn)
	s.mu.Unlock()
	return unsubscribeFunc(&s.mu, &s.notifier, id)
}

// Stop detaches the selector from its store.
func (s *Selector[S, T]) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsub := s.unsub
	s.unsub = nil
	s.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (s *Selector[S, T]) onStoreChange() {
	next := s.project(s.store.State())
	s.mu.Lock()
	if s.equal != nil && s.equal(s.last, next) {
		s.mu.Unlock()
		return
	}
	s.last = next
	subs := s.notifier.snapshotLocked()
	s.mu.Unlock()

	notifyAll(subs)
}
