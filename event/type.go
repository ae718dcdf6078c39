package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Player Event ===

	// EventJumped signals a jump impulse this step
	// Trigger: Player update (pre- or post-move jump) | Consumer: Audio
	EventJumped

	// EventCoinCollected reports coins picked up this step
	// Trigger: Coin overlap | Consumer: Audio, HUD | Value: coins removed (≥1)
	EventCoinCollected

	// EventMushroomCollected reports mushrooms picked up this step
	// Trigger: Mushroom overlap | Consumer: Audio | Value: mushrooms removed (≥1)
	EventMushroomCollected

	// EventEnemyStomped signals a stomp kill
	// Trigger: Player falling onto an enemy top | Consumer: Audio | Value: enemy index
	EventEnemyStomped

	// EventPlayerHurt signals a powered player losing power to an enemy
	// Trigger: Side contact while powered | Consumer: Audio
	EventPlayerHurt

	// EventPlayerDied signals a death and in-place level reset
	// Trigger: Unpowered enemy contact, fall-off | Consumer: Audio
	EventPlayerDied

	// EventGoalReached signals the goal pole was touched
	// Trigger: Goal overlap | Consumer: Audio
	EventGoalReached

	// === Music Event ===

	// EventMusicStart begins (or restarts) the music loop
	// Trigger: Run start, restart | Consumer: Audio
	EventMusicStart

	// EventMusicStop halts the music loop
	// Trigger: Quit to title, goal | Consumer: Audio
	EventMusicStop

	// === Engine Event ===

	// EventPhaseChanged reports a top-level phase transition
	// Trigger: Game state machine | Consumer: Render, logging | Value: new phase
	EventPhaseChanged
)
