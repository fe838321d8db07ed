// Package counter is the counter slice: its state, operations, transition
// function and selectors.
package counter

import "github.com/odvcencio/furry-store/action"

// Operation tags.
const (
	TypeIncrement         = "counter/increment"
	TypeDecrement         = "counter/decrement"
	TypeIncrementByAmount = "counter/incrementByAmount"
	TypeReset             = "counter/reset"
)

// Labels recorded in State.LastAction.
const (
	LabelNone      = "none"
	LabelIncrement = "increment"
	LabelDecrement = "decrement"
	LabelReset     = "reset"
)

// State is the counter slice. Value is unbounded in both directions.
type State struct {
	Value      int    `yaml:"value"`
	LastAction string `yaml:"lastAction"`
}

// InitialState returns the state used when none exists yet.
func InitialState() *State {
	return &State{Value: 0, LastAction: LabelNone}
}

// Action is implemented only by the counter operations in this package.
type Action interface {
	action.Action
	counterAction()
}

// Increment adds one.
type Increment struct{}

// Decrement subtracts one.
type Decrement struct{}

// IncrementByAmount adds Amount, which may be negative.
type IncrementByAmount struct {
	Amount int
}

// Reset returns the value to zero.
type Reset struct{}

func (Increment) Type() string         { return TypeIncrement }
func (Decrement) Type() string         { return TypeDecrement }
func (IncrementByAmount) Type() string { return TypeIncrementByAmount }
func (Reset) Type() string             { return TypeReset }

func (Increment) counterAction()         {}
func (Decrement) counterAction()         {}
func (IncrementByAmount) counterAction() {}
func (Reset) counterAction()             {}
