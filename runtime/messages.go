package runtime

import (
	"time"

	"github.com/odvcencio/furry-store/action"
)

// Message is an event flowing into the loop.
// Messages come from callers, timers, or effect goroutines.
type Message interface {
	isMessage()
}

// ActionMsg asks the loop to dispatch Action into the store.
type ActionMsg struct {
	Action action.Action
}

func (ActionMsg) isMessage() {}

// TickMsg is sent on each tick when the loop has a tick rate.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg triggers a state queue flush.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// StopMsg ends Run after flushing pending notifications.
type StopMsg struct{}

func (StopMsg) isMessage() {}
