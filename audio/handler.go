package audio

import (
	"github.com/lixenwraith/jumpman/event"
)

// CuePlayer is the sink the handler drives; SoundManager implements it
type CuePlayer interface {
	Play(c Cue)
	StartMusic()
	StopMusic()
}

// Handler maps simulation events to cues and music control
// Generic over the router context, which it ignores
type Handler[T any] struct {
	player CuePlayer
}

// NewHandler creates a handler feeding p
func NewHandler[T any](p CuePlayer) *Handler[T] {
	return &Handler[T]{player: p}
}

// EventTypes implements event.Handler
func (h *Handler[T]) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventJumped,
		event.EventCoinCollected,
		event.EventMushroomCollected,
		event.EventEnemyStomped,
		event.EventPlayerHurt,
		event.EventPlayerDied,
		event.EventGoalReached,
		event.EventMusicStart,
		event.EventMusicStop,
	}
}

// HandleEvent implements event.Handler
func (h *Handler[T]) HandleEvent(_ T, ev event.GameEvent) {
	switch ev.Type {
	case event.EventJumped:
		h.player.Play(CueJump)
	case event.EventCoinCollected:
		h.player.Play(CueCoin)
	case event.EventMushroomCollected:
		h.player.Play(CuePowerup)
	case event.EventEnemyStomped:
		h.player.Play(CueStomp)
	case event.EventPlayerHurt, event.EventPlayerDied:
		h.player.Play(CueHurt)
	case event.EventGoalReached:
		h.player.Play(CueWin)
	case event.EventMusicStart:
		// Restart from the top, as a fresh run does
		h.player.StopMusic()
		h.player.StartMusic()
	case event.EventMusicStop:
		h.player.StopMusic()
	}
}
