package event

// EventQueue buffers events between dispatch phases
// Single goroutine: pushed by systems during a frame, consumed by the router
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 64)}
}

func (q *EventQueue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, cap(out))
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clear drops pending events
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
