package event

// EventQueue collects events in emission order between dispatches
// Single-threaded: the simulation pushes, the frame loop consumes
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// PushAll appends events preserving their order
func (eq *EventQueue) PushAll(events []GameEvent) {
	eq.events = append(eq.events, events...)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = nil
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
