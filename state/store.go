// Package state holds application state in a versioned cell with a single
// writer entry point, plus derived views and notification scheduling.
package state

import (
	"sync"

	"github.com/odvcencio/furry-store/action"
)

var (
	_ Readable[int] = (*Store[int])(nil)
	_ Dispatcher    = (*Store[int])(nil)
)

// Reducer computes the next state from the current one and an action.
// It must not dispatch, block or mutate its input.
type Reducer[S any] func(state S, a action.Action) S

// Store owns one state value. Dispatch is the only way to replace it; each
// replacement is installed whole and bumps Version.
type Store[S any] struct {
	mu       sync.Mutex
	reducer  Reducer[S]
	state    S
	version  uint64
	equal    EqualFunc[S]
	notifier notifier
	dispatch DispatchFunc
	chain    []Middleware
}

// StoreOption configures a Store.
type StoreOption[S any] func(*Store[S])

// WithEqualFunc sets how the store detects a change. Dispatches whose result
// is equal to the current state leave Version untouched; subscribers are
// still notified.
func WithEqualFunc[S any](fn EqualFunc[S]) StoreOption[S] {
	return func(s *Store[S]) {
		s.equal = fn
	}
}

// WithMiddleware wraps dispatch with mw, outermost first.
func WithMiddleware[S any](mw ...Middleware) StoreOption[S] {
	return func(s *Store[S]) {
		s.chain = append(s.chain, mw...)
	}
}

// NewStore creates a store whose initial state is reducer(zero, Init{}).
func NewStore[S any](reducer Reducer[S], opts ...StoreOption[S]) *Store[S] {
	if reducer == nil {
		reducer = func(state S, _ action.Action) S { return state }
	}
	s := &Store[S]{reducer: reducer}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	var zero S
	s.state = reducer(zero, action.Init{})
	s.dispatch = chain(s.chain, s.apply)
	return s
}

// Use appends middleware to the dispatch chain.
func (s *Store[S]) Use(mw ...Middleware) {
	if s == nil || len(mw) == 0 {
		return
	}
	s.mu.Lock()
	s.chain = append(s.chain, mw...)
	s.dispatch = chain(s.chain, s.apply)
	s.mu.Unlock()
}

// State returns the current snapshot.
func (s *Store[S]) State() S {
	if s == nil {
		var zero S
		return zero
	}
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	return state
}

// Version returns the number of state changes installed since creation.
func (s *Store[S]) Version() uint64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	v := s.version
	s.mu.Unlock()
	return v
}

// Dispatch runs a through the middleware chain and the reducer.
// Subscribers are notified after the new state is installed.
func (s *Store[S]) Dispatch(a action.Action) {
	if s == nil || a == nil {
		return
	}
	s.mu.Lock()
	dispatch := s.dispatch
	s.mu.Unlock()
	dispatch(a)
}

func (s *Store[S]) apply(a action.Action) {
	s.mu.Lock()
	next := s.reducer(s.state, a)
	if s.equal == nil || !s.equal(s.state, next) {
		s.version++
	}
	s.state = next
	subs := s.notifier.snapshotLocked()
	s.mu.Unlock()

	notifyAll(subs)
}

// Subscribe registers a listener for state changes.
func (s *Store[S]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously inside Dispatch.
func (s *Store[S]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.notifier.addLocked(scheduler, fn)
	s.mu.Unlock()
	return unsubscribeFunc(&s.mu, &s.notifier, id)
}
