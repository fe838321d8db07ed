// Package todo is the todo-list slice: tasks, display filter and search term,
// the operations over them, the transition function and selectors.
//
// Tasks are shared by pointer between successive states. A transition never
// writes through a *Task it received; modified tasks are fresh copies and
// untouched tasks keep their pointer, so observers can detect change with ==.
package todo

import "time"

// Task is a single todo item. ID never changes after creation.
type Task struct {
	ID        string    `yaml:"id"`
	Text      string    `yaml:"text"`
	Completed bool      `yaml:"completed"`
	CreatedAt time.Time `yaml:"createdAt"`
}

func (t *Task) withCompleted(completed bool) *Task {
	next := *t
	next.Completed = completed
	return &next
}

func (t *Task) withText(text string) *Task {
	next := *t
	next.Text = text
	return &next
}

// Filter selects which tasks a derived view shows.
type Filter string

const (
	FilterAll       Filter = "ALL"
	FilterActive    Filter = "ACTIVE"
	FilterCompleted Filter = "COMPLETED"
)

// Valid reports whether f is one of the declared filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// State is the todo slice. Todos is ordered most recent first and holds no
// two tasks with the same ID. Filter and SearchTerm only affect derived views.
type State struct {
	Todos      []*Task `yaml:"todos"`
	Filter     Filter  `yaml:"filter"`
	SearchTerm string  `yaml:"searchTerm"`
}

func (s *State) withTodos(todos []*Task) *State {
	return &State{Todos: todos, Filter: s.Filter, SearchTerm: s.SearchTerm}
}
