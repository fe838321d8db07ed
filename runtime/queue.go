package runtime

// QueueFlushPolicy selects which messages drain the loop's callback queue.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick drains after every message.
	FlushOnMessageAndTick QueueFlushPolicy = iota
	// FlushOnMessage drains after every message except ticks.
	FlushOnMessage
	// FlushOnTick drains on ticks only, batching bursts of actions.
	FlushOnTick
	// FlushManual drains only when a QueueFlushMsg arrives.
	FlushManual
)

var flushPolicyNames = [...]string{
	FlushOnMessageAndTick: "message+tick",
	FlushOnMessage:        "message",
	FlushOnTick:           "tick",
	FlushManual:           "manual",
}

func (p QueueFlushPolicy) String() string {
	if p < 0 || int(p) >= len(flushPolicyNames) {
		return "unknown"
	}
	return flushPolicyNames[p]
}

// drains reports whether msg should drain the queue under p.
// Stop and explicit flush requests drain under every policy.
func (p QueueFlushPolicy) drains(msg Message) bool {
	switch msg.(type) {
	case StopMsg, QueueFlushMsg:
		return true
	case TickMsg:
		return p == FlushOnMessageAndTick || p == FlushOnTick
	}
	return p == FlushOnMessageAndTick || p == FlushOnMessage
}
