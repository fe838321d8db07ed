package state

import "github.com/odvcencio/furry-store/action"

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Readable exposes a read-only snapshot and change notifications.
type Readable[S any] interface {
	State() S
	Version() uint64
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Dispatcher accepts actions.
type Dispatcher interface {
	Dispatch(a action.Action)
}

// Versioned reports how many state changes have been installed.
type Versioned interface {
	Version() uint64
}
