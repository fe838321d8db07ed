// Package runtime serialises dispatches from callers, timers and background
// effects into a single goroutine that owns the store's write path.
package runtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/odvcencio/furry-store/action"
	"github.com/odvcencio/furry-store/state"
)

// ErrNoDispatcher is returned by Run when the loop has no store.
var ErrNoDispatcher = errors.New("dispatcher is required")

// UpdateFunc handles one message inside the loop goroutine.
type UpdateFunc func(loop *Loop, msg Message)

// LoopConfig configures a Loop.
type LoopConfig struct {
	Dispatcher    state.Dispatcher
	Update        UpdateFunc
	MessageBuffer int
	TickRate      time.Duration
	StateQueue    *state.Queue
	FlushPolicy   QueueFlushPolicy
	Logger        *slog.Logger
}

// Loop drains a message channel and applies each message in order.
type Loop struct {
	dispatcher     state.Dispatcher
	update         UpdateFunc
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	logger         *slog.Logger

	taskMu         sync.Mutex
	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingEffects []Effect

	running   bool
	processed uint64
}

// NewLoop creates a loop from config.
func NewLoop(cfg LoopConfig) *Loop {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loop{
		dispatcher:  cfg.Dispatcher,
		update:      cfg.Update,
		messages:    make(chan Message, bufferSize),
		tickRate:    cfg.TickRate,
		stateQueue:  queue,
		flushPolicy: cfg.FlushPolicy,
		logger:      logger.With(slog.String("component", "loop")),
	}
	if l.update == nil {
		l.update = DefaultUpdate
	}
	l.queueScheduler = NewQueueScheduler(queue, l.TryPost)
	return l
}

// StateQueue returns the loop's state queue.
func (l *Loop) StateQueue() *state.Queue {
	if l == nil {
		return nil
	}
	return l.stateQueue
}

// StateScheduler returns a scheduler whose callbacks run in the loop
// goroutine after the message that triggered them.
func (l *Loop) StateScheduler() state.Scheduler {
	if l == nil || l.queueScheduler == nil {
		return nil
	}
	return l.queueScheduler
}

// Dispatcher returns the store the loop writes to.
func (l *Loop) Dispatcher() state.Dispatcher {
	if l == nil {
		return nil
	}
	return l.dispatcher
}

// Processed returns the number of messages handled so far.
// Only meaningful from the loop goroutine or after Run returns.
func (l *Loop) Processed() uint64 {
	if l == nil {
		return 0
	}
	return l.processed
}

// Post sends a message to the loop, logging when it is dropped.
func (l *Loop) Post(msg Message) {
	if !l.TryPost(msg) && l != nil {
		l.logger.Warn("message dropped", slog.String("message", messageName(msg)))
	}
}

// TryPost sends a message without blocking.
// It returns false when the buffer is full.
func (l *Loop) TryPost(msg Message) bool {
	if l == nil || l.messages == nil || msg == nil {
		return false
	}
	select {
	case l.messages <- msg:
		return true
	default:
		return false
	}
}

// Dispatch posts a as an ActionMsg.
func (l *Loop) Dispatch(a action.Action) bool {
	if a == nil {
		return false
	}
	return l.TryPost(ActionMsg{Action: a})
}

// Spawn starts an effect using the loop task context.
// If Run has not started, the effect is queued until it does.
func (l *Loop) Spawn(effect Effect) {
	if l == nil || effect.Run == nil {
		return
	}
	l.taskMu.Lock()
	ctx := l.taskCtx
	if ctx == nil {
		l.pendingEffects = append(l.pendingEffects, effect)
		l.taskMu.Unlock()
		return
	}
	l.taskMu.Unlock()
	go effect.Run(ctx, l.TryPost)
}

// After dispatches a once delay has elapsed.
func (l *Loop) After(delay time.Duration, a action.Action) {
	l.Spawn(After(delay, a))
}

// Every dispatches the action returned by fn on an interval.
func (l *Loop) Every(interval time.Duration, fn func(time.Time) action.Action) {
	l.Spawn(Every(interval, fn))
}

// Run processes messages until a StopMsg arrives or ctx is cancelled.
// It returns nil after StopMsg and ctx.Err() after cancellation.
func (l *Loop) Run(ctx context.Context) error {
	if l == nil || l.dispatcher == nil {
		return ErrNoDispatcher
	}
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	l.taskMu.Lock()
	l.taskCtx = taskCtx
	l.taskCancel = taskCancel
	effects := l.pendingEffects
	l.pendingEffects = nil
	l.taskMu.Unlock()
	defer func() {
		taskCancel()
		l.taskMu.Lock()
		l.taskCtx = nil
		l.taskCancel = nil
		l.taskMu.Unlock()
	}()

	for _, effect := range effects {
		go effect.Run(taskCtx, l.TryPost)
	}

	var ticks <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(l.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	l.logger.Debug("loop started",
		slog.Int("effects", len(effects)),
		slog.String("flush", l.flushPolicy.String()))
	l.running = true
	for l.running {
		select {
		case <-ctx.Done():
			l.running = false
			dropped := l.stateQueue.Discard()
			l.logger.Debug("loop cancelled",
				slog.Uint64("processed", l.processed),
				slog.Int("discarded", dropped))
			return ctx.Err()
		case msg := <-l.messages:
			l.handle(msg)
		case now := <-ticks:
			l.handle(TickMsg{Time: now})
		}
	}
	l.logger.Debug("loop stopped",
		slog.Uint64("processed", l.processed),
		slog.Uint64("dropped_wakeups", l.queueScheduler.DroppedWakeups()))
	return nil
}

func (l *Loop) handle(msg Message) {
	l.processed++
	if _, ok := msg.(StopMsg); ok {
		l.running = false
		l.cancelTasks()
	} else {
		l.update(l, msg)
	}
	if l.flushPolicy.drains(msg) {
		l.flushQueue()
	}
}

// DefaultUpdate dispatches ActionMsg into the store and ignores the rest.
func DefaultUpdate(loop *Loop, msg Message) {
	if loop == nil || loop.dispatcher == nil {
		return
	}
	if m, ok := msg.(ActionMsg); ok && m.Action != nil {
		loop.dispatcher.Dispatch(m.Action)
	}
}

func (l *Loop) flushQueue() int {
	if l.queueScheduler != nil {
		return l.queueScheduler.Flush()
	}
	return l.stateQueue.Flush()
}

func (l *Loop) cancelTasks() {
	l.taskMu.Lock()
	cancel := l.taskCancel
	l.taskMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func messageName(msg Message) string {
	switch m := msg.(type) {
	case ActionMsg:
		if m.Action != nil {
			return m.Action.Type()
		}
		return "action"
	case TickMsg:
		return "tick"
	case QueueFlushMsg:
		return "queue-flush"
	case StopMsg:
		return "stop"
	default:
		return "unknown"
	}
}
