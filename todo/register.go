package todo

import (
	"fmt"
	"strings"

	"github.com/odvcencio/furry-store/action"
)

// Register installs decoders for the todo operations. The decoders reject
// blank task text, empty ids and unknown filters; the transition function
// itself accepts anything.
func Register(reg *action.Registry) {
	for typ, fn := range decoders {
		reg.Register(typ, action.Decoder(fn))
	}
}

var decoders = map[string]func(action.Record) (Action, error){
	TypeAddTodo:    decodeAddTodo,
	TypeToggleTodo: decodeToggleTodo,
	TypeDeleteTodo: decodeDeleteTodo,
	TypeEditTodo:   decodeEditTodo,
	TypeClearCompleted: func(action.Record) (Action, error) {
		return ClearCompleted{}, nil
	},
	TypeSetFilter:     decodeSetFilter,
	TypeSetSearchTerm: decodeSetSearchTerm,
	TypeMarkAllComplete: func(action.Record) (Action, error) {
		return MarkAllComplete{}, nil
	},
}

func decodeToggleTodo(rec action.Record) (Action, error) {
	id, err := decodeID(rec)
	if err != nil {
		return nil, err
	}
	return ToggleTodo{ID: id}, nil
}

func decodeDeleteTodo(rec action.Record) (Action, error) {
	id, err := decodeID(rec)
	if err != nil {
		return nil, err
	}
	return DeleteTodo{ID: id}, nil
}

func decodeSetSearchTerm(rec action.Record) (Action, error) {
	var term string
	if err := rec.DecodePayload(&term); err != nil {
		return nil, err
	}
	return SetSearchTerm{Term: term}, nil
}

func decodeAddTodo(rec action.Record) (Action, error) {
	text, err := decodeText(rec)
	if err != nil {
		return nil, err
	}
	return AddTodo{Text: text}, nil
}

type editPayload struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

func decodeEditTodo(rec action.Record) (Action, error) {
	var p editPayload
	if err := rec.DecodePayload(&p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("%s: %w: empty id", rec.Type, action.ErrInvalidPayload)
	}
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return nil, fmt.Errorf("%s: %w: empty text", rec.Type, action.ErrInvalidPayload)
	}
	return EditTodo{ID: p.ID, Text: text}, nil
}

func decodeSetFilter(rec action.Record) (Action, error) {
	var value string
	if err := rec.DecodePayload(&value); err != nil {
		return nil, err
	}
	filter := Filter(strings.ToUpper(value))
	if !filter.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown filter %q", rec.Type, action.ErrInvalidPayload, value)
	}
	return SetFilter{Filter: filter}, nil
}

func decodeText(rec action.Record) (string, error) {
	var text string
	if err := rec.DecodePayload(&text); err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w: empty text", rec.Type, action.ErrInvalidPayload)
	}
	return text, nil
}

func decodeID(rec action.Record) (string, error) {
	var id string
	if err := rec.DecodePayload(&id); err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%s: %w: empty id", rec.Type, action.ErrInvalidPayload)
	}
	return id, nil
}
