package action

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Errors returned while decoding records.
var (
	ErrEmptyType      = errors.New("record has no type")
	ErrMissingPayload = errors.New("missing payload")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Record is the dynamic {type, payload} shape accepted at the dispatch boundary.
type Record struct {
	Type    string    `yaml:"type"`
	Payload yaml.Node `yaml:"payload,omitempty"`
}

// NewRecord builds a record, encoding payload when it is non-nil.
func NewRecord(typ string, payload any) (Record, error) {
	rec := Record{Type: typ}
	if payload == nil {
		return rec, nil
	}
	if err := rec.Payload.Encode(payload); err != nil {
		return Record{}, fmt.Errorf("encode %s payload: %w", typ, err)
	}
	return rec, nil
}

// HasPayload reports whether the record carries a non-null payload.
func (r Record) HasPayload() bool {
	if r.Payload.Kind == 0 {
		return false
	}
	return r.Payload.ShortTag() != "!!null"
}

// DecodePayload decodes the payload into target.
func (r Record) DecodePayload(target any) error {
	if !r.HasPayload() {
		return fmt.Errorf("%s: %w", r.Type, ErrMissingPayload)
	}
	if err := r.Payload.Decode(target); err != nil {
		return fmt.Errorf("%s: %w: %v", r.Type, ErrInvalidPayload, err)
	}
	return nil
}

// DecodeFunc converts a record into a typed action.
type DecodeFunc func(rec Record) (Action, error)

// Decoder adapts a decoder for a narrower action family, such as one
// slice's closed set of operations, into a DecodeFunc.
func Decoder[A Action](fn func(rec Record) (A, error)) DecodeFunc {
	return func(rec Record) (Action, error) {
		a, err := fn(rec)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

// Registry maps record types to decoders.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// Register installs a decoder for typ, replacing any previous one.
func (r *Registry) Register(typ string, fn DecodeFunc) {
	if r == nil || typ == "" || fn == nil {
		return
	}
	r.mu.Lock()
	r.decoders[typ] = fn
	r.mu.Unlock()
}

// Types returns the registered record types in sorted order.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	types := make([]string, 0, len(r.decoders))
	for typ := range r.decoders {
		types = append(types, typ)
	}
	r.mu.RUnlock()
	sort.Strings(types)
	return types
}

// Decode converts rec into a typed action.
// Unregistered types decode to Unknown rather than failing.
func (r *Registry) Decode(rec Record) (Action, error) {
	if rec.Type == "" {
		return nil, ErrEmptyType
	}
	var fn DecodeFunc
	if r != nil {
		r.mu.RLock()
		fn = r.decoders[rec.Type]
		r.mu.RUnlock()
	}
	if fn == nil {
		return Unknown{Name: rec.Type}, nil
	}
	return fn(rec)
}

// DecodeAll reads a YAML stream and decodes every record in it.
// Each document holds either a single record or a sequence of records.
func (r *Registry) DecodeAll(src io.Reader) ([]Action, error) {
	dec := yaml.NewDecoder(src)
	var actions []Action
	for doc := 1; ; doc++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return actions, nil
			}
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		root := &node
		if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
			root = root.Content[0]
		}
		if root.Kind == yaml.DocumentNode {
			continue
		}
		items := []*yaml.Node{root}
		if root.Kind == yaml.SequenceNode {
			items = root.Content
		}
		for i, item := range items {
			var rec Record
			if err := item.Decode(&rec); err != nil {
				return nil, fmt.Errorf("document %d record %d: %w", doc, i+1, err)
			}
			a, err := r.Decode(rec)
			if err != nil {
				return nil, fmt.Errorf("document %d record %d: %w", doc, i+1, err)
			}
			actions = append(actions, a)
		}
	}
}
