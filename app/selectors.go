package app

import (
	"github.com/odvcencio/furry-store/counter"
	"github.com/odvcencio/furry-store/todo"
)

// OnCounter lifts a counter selector to the root state.
func OnCounter[T any](sel func(*counter.State) T) func(*RootState) T {
	return func(r *RootState) T {
		return sel(r.Counter())
	}
}

// OnTodos lifts a todo selector to the root state.
func OnTodos[T any](sel func(*todo.State) T) func(*RootState) T {
	return func(r *RootState) T {
		return sel(r.Todos())
	}
}

// Root-level selectors.
var (
	SelectCounterValue  = OnCounter(counter.SelectValue)
	SelectLastAction    = OnCounter(counter.SelectLastAction)
	SelectIsPositive    = OnCounter(counter.SelectIsPositive)
	SelectIsEven        = OnCounter(counter.SelectIsEven)
	SelectTodos         = OnTodos(todo.SelectTodos)
	SelectFilter        = OnTodos(todo.SelectFilter)
	SelectSearchTerm    = OnTodos(todo.SelectSearchTerm)
	SelectFilteredTodos = OnTodos(todo.SelectFilteredTodos)
	SelectTodoStats     = OnTodos(todo.SelectStats)
	SelectAllCompleted  = OnTodos(todo.SelectAllCompleted)
)
