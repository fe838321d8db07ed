// Package app composes the counter and todo slices into the root state and
// builds the store that owns it.
package app

import (
	"github.com/odvcencio/furry-store/action"
	"github.com/odvcencio/furry-store/counter"
	"github.com/odvcencio/furry-store/state"
	"github.com/odvcencio/furry-store/todo"
)

// RootState is the snapshot held by the store. Only the root composition
// constructs one; consumers read it through Counter and Todos.
type RootState struct {
	counter *counter.State
	todos   *todo.State
}

// Counter returns the counter slice.
func (r *RootState) Counter() *counter.State {
	if r == nil {
		return nil
	}
	return r.counter
}

// Todos returns the todo slice.
func (r *RootState) Todos() *todo.State {
	if r == nil {
		return nil
	}
	return r.todos
}

type snapshot struct {
	Counter *counter.State `yaml:"counter"`
	Todos   *todo.State    `yaml:"todos"`
}

// MarshalYAML encodes the root as {counter, todos}.
func (r *RootState) MarshalYAML() (any, error) {
	return snapshot{Counter: r.Counter(), Todos: r.Todos()}, nil
}

// NewReducer returns the root composition over the given todo reducer.
// Every action goes to both slices. When neither slice changes, the previous
// root is returned so observers can compare snapshots with ==.
func NewReducer(todos *todo.Reducer) state.Reducer[*RootState] {
	if todos == nil {
		todos = todo.NewReducer()
	}
	return func(root *RootState, a action.Action) *RootState {
		var prevCounter *counter.State
		var prevTodos *todo.State
		if root != nil {
			prevCounter, prevTodos = root.counter, root.todos
		}
		nextCounter := counter.Reduce(prevCounter, a)
		nextTodos := todos.Reduce(prevTodos, a)
		if root != nil && nextCounter == prevCounter && nextTodos == prevTodos {
			return root
		}
		return &RootState{counter: nextCounter, todos: nextTodos}
	}
}

var defaultReduce = NewReducer(nil)

// Reduce applies a to root with the default todo reducer.
func Reduce(root *RootState, a action.Action) *RootState {
	return defaultReduce(root, a)
}

// NewRegistry returns a registry that decodes every counter and todo record.
func NewRegistry() *action.Registry {
	reg := action.NewRegistry()
	counter.Register(reg)
	todo.Register(reg)
	return reg
}
