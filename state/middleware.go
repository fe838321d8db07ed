package state

import (
	"log/slog"
	"time"

	"github.com/odvcencio/furry-store/action"
)

// DispatchFunc hands an action to the next stage of a dispatch chain.
type DispatchFunc func(a action.Action)

// Middleware wraps a dispatch stage.
type Middleware func(next DispatchFunc) DispatchFunc

func chain(mw []Middleware, final DispatchFunc) DispatchFunc {
	dispatch := final
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] == nil {
			continue
		}
		dispatch = mw[i](dispatch)
	}
	return dispatch
}

// Logging logs every dispatch at debug level with the resulting version.
// If logger is nil, slog.Default is used.
func Logging(logger *slog.Logger, v Versioned) Middleware {
	if logger == nil {
		logger = slog.Default().With(slog.String("component", "store"))
	}
	return func(next DispatchFunc) DispatchFunc {
		return func(a action.Action) {
			var before uint64
			if v != nil {
				before = v.Version()
			}
			start := time.Now()
			next(a)
			attrs := []any{
				slog.String("type", a.Type()),
				slog.Duration("duration", time.Since(start)),
			}
			if v != nil {
				after := v.Version()
				attrs = append(attrs, slog.Uint64("version", after), slog.Bool("changed", after != before))
			}
			logger.Debug("dispatch", attrs...)
		}
	}
}
