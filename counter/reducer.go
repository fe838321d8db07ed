package counter

import (
	"strconv"

	"github.com/odvcencio/furry-store/action"
)

// Reduce applies a to s and returns the next state.
// A nil s is replaced by InitialState. Actions that are not counter
// operations return s itself.
func Reduce(s *State, a action.Action) *State {
	if s == nil {
		s = InitialState()
	}
	op, ok := a.(Action)
	if !ok {
		return s
	}
	switch op := op.(type) {
	case Increment:
		return &State{Value: s.Value + 1, LastAction: LabelIncrement}
	case Decrement:
		return &State{Value: s.Value - 1, LastAction: LabelDecrement}
	case IncrementByAmount:
		return &State{Value: s.Value + op.Amount, LastAction: "increment by " + strconv.Itoa(op.Amount)}
	case Reset:
		return &State{Value: 0, LastAction: LabelReset}
	default:
		return s
	}
}
