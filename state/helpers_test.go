package state

import "github.com/odvcencio/furry-store/action"

type add struct{ n int }

func (add) Type() string { return "test/add" }

type tally struct {
	total int
}

// reduceTally keeps the same pointer for anything other than a non-zero add.
func reduceTally(s *tally, a action.Action) *tally {
	if s == nil {
		s = &tally{}
	}
	if op, ok := a.(add); ok && op.n != 0 {
		return &tally{total: s.total + op.n}
	}
	return s
}

func newTallyStore(opts ...StoreOption[*tally]) *Store[*tally] {
	opts = append([]StoreOption[*tally]{WithEqualFunc[*tally](EqualComparable[*tally])}, opts...)
	return NewStore[*tally](reduceTally, opts...)
}
