package todo

import (
	"strconv"
	"time"

	"github.com/odvcencio/furry-store/action"
)

// Reducer applies todo operations. It owns the clock and id source used by
// AddTodo; everything else it does is a pure function of its inputs.
type Reducer struct {
	now     func() time.Time
	ids     IDSource
	samples bool
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithClock sets the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Reducer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDSource sets the generator used for new task ids.
func WithIDSource(ids IDSource) Option {
	return func(r *Reducer) {
		if ids != nil {
			r.ids = ids
		}
	}
}

// WithoutSamples makes the initial state an empty list.
func WithoutSamples() Option {
	return func(r *Reducer) {
		r.samples = false
	}
}

// NewReducer creates a Reducer with a wall clock and ULID ids by default.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{
		now:     time.Now,
		ids:     NewULIDSource(),
		samples: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var defaultReducer = NewReducer()

// Reduce applies a to s using the default Reducer.
func Reduce(s *State, a action.Action) *State {
	return defaultReducer.Reduce(s, a)
}

// Sample task ids. The prefix keeps them apart from ULIDs and from
// SequenceSource ids.
const (
	SampleID1 = "sample-1"
	SampleID2 = "sample-2"
	SampleID3 = "sample-3"
)

// InitialState returns the state used when none exists yet.
func (r *Reducer) InitialState() *State {
	s := &State{Todos: []*Task{}, Filter: FilterAll}
	if !r.samples {
		return s
	}
	now := r.now()
	s.Todos = []*Task{
		{ID: SampleID1, Text: "Learn state management basics", Completed: true, CreatedAt: now},
		{ID: SampleID2, Text: "Build a counter widget", CreatedAt: now},
		{ID: SampleID3, Text: "Build a todo list", CreatedAt: now},
	}
	return s
}

// Reduce applies a to s and returns the next state.
// A nil s is replaced by InitialState. When a changes nothing, or is not a
// todo operation, s itself is returned.
func (r *Reducer) Reduce(s *State, a action.Action) *State {
	if s == nil {
		s = r.InitialState()
	}
	op, ok := a.(Action)
	if !ok {
		return s
	}
	switch op := op.(type) {
	case AddTodo:
		now := r.now()
		task := &Task{ID: r.newID(s, now), Text: op.Text, CreatedAt: now}
		todos := make([]*Task, 0, len(s.Todos)+1)
		todos = append(todos, task)
		todos = append(todos, s.Todos...)
		return s.withTodos(todos)
	case ToggleTodo:
		return replaceTask(s, op.ID, func(t *Task) *Task {
			return t.withCompleted(!t.Completed)
		})
	case EditTodo:
		return replaceTask(s, op.ID, func(t *Task) *Task {
			return t.withText(op.Text)
		})
	case DeleteTodo:
		return removeTasks(s, func(t *Task) bool { return t.ID == op.ID })
	case ClearCompleted:
		return removeTasks(s, func(t *Task) bool { return t.Completed })
	case SetFilter:
		if s.Filter == op.Filter {
			return s
		}
		return &State{Todos: s.Todos, Filter: op.Filter, SearchTerm: s.SearchTerm}
	case SetSearchTerm:
		if s.SearchTerm == op.Term {
			return s
		}
		return &State{Todos: s.Todos, Filter: s.Filter, SearchTerm: op.Term}
	case MarkAllComplete:
		return markAll(s)
	default:
		return s
	}
}

// newID draws ids until one is not already in s. A source that keeps
// repeating itself gets a numeric suffix.
func (r *Reducer) newID(s *State, now time.Time) string {
	id := r.ids.NewID(now)
	for attempt := 0; hasTask(s.Todos, id); attempt++ {
		if attempt < len(s.Todos) {
			id = r.ids.NewID(now)
			continue
		}
		base := id
		for n := 2; hasTask(s.Todos, id); n++ {
			id = base + "-" + strconv.Itoa(n)
		}
	}
	return id
}

func hasTask(todos []*Task, id string) bool {
	for _, t := range todos {
		if t.ID == id {
			return true
		}
	}
	return false
}

// replaceTask swaps the task with id for fn(task). Other tasks keep their
// pointers. An unknown id returns s.
func replaceTask(s *State, id string, fn func(*Task) *Task) *State {
	for i, t := range s.Todos {
		if t.ID != id {
			continue
		}
		todos := make([]*Task, len(s.Todos))
		copy(todos, s.Todos)
		todos[i] = fn(t)
		return s.withTodos(todos)
	}
	return s
}

// removeTasks drops every task matching drop. If none match, s is returned.
func removeTasks(s *State, drop func(*Task) bool) *State {
	var todos []*Task
	for i, t := range s.Todos {
		if !drop(t) {
			if todos != nil {
				todos = append(todos, t)
			}
			continue
		}
		if todos == nil {
			todos = make([]*Task, i, len(s.Todos))
			copy(todos, s.Todos[:i])
		}
	}
	if todos == nil {
		return s
	}
	return s.withTodos(todos)
}

// markAll completes every task unless all are completed already, in which
// case every task is reopened.
func markAll(s *State) *State {
	if len(s.Todos) == 0 {
		return s
	}
	target := !allCompleted(s.Todos)
	todos := make([]*Task, len(s.Todos))
	for i, t := range s.Todos {
		if t.Completed == target {
			todos[i] = t
			continue
		}
		todos[i] = t.withCompleted(target)
	}
	return s.withTodos(todos)
}

func allCompleted(todos []*Task) bool {
	for _, t := range todos {
		if !t.Completed {
			return false
		}
	}
	return true
}
