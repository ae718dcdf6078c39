package event

// GameEvent is a discrete tag emitted by the simulation
// Value carries the per-type payload documented on the EventType
type GameEvent struct {
	Type  EventType
	Tick  uint64
	Value int
}
