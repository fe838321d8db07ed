package counter

import "github.com/odvcencio/furry-store/action"

// Register installs decoders for the counter operations.
func Register(reg *action.Registry) {
	for typ, fn := range decoders {
		reg.Register(typ, action.Decoder(fn))
	}
}

var decoders = map[string]func(action.Record) (Action, error){
	TypeIncrement:         constant(Increment{}),
	TypeDecrement:         constant(Decrement{}),
	TypeReset:             constant(Reset{}),
	TypeIncrementByAmount: decodeIncrementByAmount,
}

func constant(op Action) func(action.Record) (Action, error) {
	return func(action.Record) (Action, error) { return op, nil }
}

func decodeIncrementByAmount(rec action.Record) (Action, error) {
	var amount int
	if err := rec.DecodePayload(&amount); err != nil {
		return nil, err
	}
	return IncrementByAmount{Amount: amount}, nil
}
