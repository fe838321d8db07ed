package todo

import "github.com/odvcencio/furry-store/action"

// Operation tags.
const (
	TypeAddTodo         = "todos/addTodo"
	TypeToggleTodo      = "todos/toggleTodo"
	TypeDeleteTodo      = "todos/deleteTodo"
	TypeEditTodo        = "todos/editTodo"
	TypeClearCompleted  = "todos/clearCompleted"
	TypeSetFilter       = "todos/setFilter"
	TypeSetSearchTerm   = "todos/setSearchTerm"
	TypeMarkAllComplete = "todos/markAllComplete"
)

// Action is implemented only by the todo operations in this package.
type Action interface {
	action.Action
	todoAction()
}

// AddTodo prepends a new active task.
type AddTodo struct {
	Text string
}

// ToggleTodo inverts the completed flag of the task with ID.
type ToggleTodo struct {
	ID string
}

// DeleteTodo removes the task with ID.
type DeleteTodo struct {
	ID string
}

// EditTodo replaces the text of the task with ID.
type EditTodo struct {
	ID   string
	Text string
}

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

// SetFilter changes the display filter.
type SetFilter struct {
	Filter Filter
}

// SetSearchTerm changes the search term. The term is stored verbatim.
type SetSearchTerm struct {
	Term string
}

// MarkAllComplete completes every task, or reopens every task when all of
// them are already completed.
type MarkAllComplete struct{}

func (AddTodo) Type() string         { return TypeAddTodo }
func (ToggleTodo) Type() string      { return TypeToggleTodo }
func (DeleteTodo) Type() string      { return TypeDeleteTodo }
func (EditTodo) Type() string        { return TypeEditTodo }
func (ClearCompleted) Type() string  { return TypeClearCompleted }
func (SetFilter) Type() string       { return TypeSetFilter }
func (SetSearchTerm) Type() string   { return TypeSetSearchTerm }
func (MarkAllComplete) Type() string { return TypeMarkAllComplete }

func (AddTodo) todoAction()         {}
func (ToggleTodo) todoAction()      {}
func (DeleteTodo) todoAction()      {}
func (EditTodo) todoAction()        {}
func (ClearCompleted) todoAction()  {}
func (SetFilter) todoAction()       {}
func (SetSearchTerm) todoAction()   {}
func (MarkAllComplete) todoAction() {}
