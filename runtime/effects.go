package runtime

import (
	"context"
	"time"

	"github.com/odvcencio/furry-store/action"
)

// PostFunc sends a message into the loop.
// It returns false when the message buffer is full.
type PostFunc func(Message) bool

// Effect runs work in a background goroutine bound to the loop.
// Use the provided context for cancellation and PostFunc to emit messages.
type Effect struct {
	Run func(ctx context.Context, post PostFunc)
}

// After dispatches a once delay has elapsed.
func After(delay time.Duration, a action.Action) Effect {
	return Effect{
		Run: func(ctx context.Context, post PostFunc) {
			if a == nil || post == nil {
				return
			}
			if delay <= 0 {
				post(ActionMsg{Action: a})
				return
			}
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
				post(ActionMsg{Action: a})
			}
		},
	}
}

// Every dispatches the action returned by fn on a fixed interval.
// Returning nil from fn skips that tick.
func Every(interval time.Duration, fn func(time.Time) action.Action) Effect {
	return Effect{
		Run: func(ctx context.Context, post PostFunc) {
			if interval <= 0 || fn == nil || post == nil {
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					if a := fn(now); a != nil {
						post(ActionMsg{Action: a})
					}
				}
			}
		},
	}
}
