package app

import (
	"log/slog"
	"time"

	"github.com/odvcencio/furry-store/state"
	"github.com/odvcencio/furry-store/todo"
)

// Store is the store owning a RootState.
type Store = state.Store[*RootState]

type options struct {
	todo       []todo.Option
	logger     *slog.Logger
	middleware []state.Middleware
}

// Option configures NewStore.
type Option func(*options)

// WithClock sets the clock used to timestamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.todo = append(o.todo, todo.WithClock(now))
	}
}

// WithIDSource sets the generator for new task ids.
func WithIDSource(ids todo.IDSource) Option {
	return func(o *options) {
		o.todo = append(o.todo, todo.WithIDSource(ids))
	}
}

// WithoutSamples starts with an empty todo list.
func WithoutSamples() Option {
	return func(o *options) {
		o.todo = append(o.todo, todo.WithoutSamples())
	}
}

// WithLogger sets the logger used for dispatch logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMiddleware adds dispatch middleware after the logging stage.
func WithMiddleware(mw ...state.Middleware) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, mw...)
	}
}

// NewStore creates the process store. Its initial state is the root
// composition applied to no state and the init sentinel.
func NewStore(opts ...Option) *Store {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "store"))

	store := state.NewStore[*RootState](
		NewReducer(todo.NewReducer(o.todo...)),
		state.WithEqualFunc[*RootState](state.EqualComparable[*RootState]),
	)
	store.Use(state.Logging(logger, store))
	store.Use(o.middleware...)
	return store
}
