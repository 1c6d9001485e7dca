package events

// EventQueue is a FIFO of pending events
// Single-threaded: the game loop is the only producer and consumer
// Two buffers alternate so handlers may push while a batch is being dispatched
type EventQueue struct {
	pending []GameEvent
	spare   []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, 16),
		spare:   make([]GameEvent, 0, 16),
	}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.pending = append(eq.pending, event)
}

// Consume returns all pending events in FIFO order
// The returned slice is valid until the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.pending) == 0 {
		return nil
	}
	out := eq.pending
	eq.pending = eq.spare[:0]
	eq.spare = out
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.pending)
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.pending = eq.pending[:0]
}
