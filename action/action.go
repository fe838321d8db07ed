// Package action defines the operation records dispatched into a store.
package action

// Action is an operation record. Every dispatched action is routed to every
// slice transition function; slices ignore actions they do not recognise.
type Action interface {
	Type() string
}

// InitType tags the sentinel dispatched once when a store is created.
const InitType = "@@furry/INIT"

// Init is the no-op sentinel used to compute a default state.
type Init struct{}

// Type returns InitType.
func (Init) Type() string { return InitType }

// Unknown carries a tag that no slice recognises.
// Transition functions treat it as identity.
type Unknown struct {
	Name string
}

// Type returns the unrecognised tag.
func (u Unknown) Type() string { return u.Name }
