package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/jumpman/event"
)

type fakePlayer struct {
	calls []string
}

func (f *fakePlayer) Play(c Cue)  { f.calls = append(f.calls, c.String()) }
func (f *fakePlayer) StartMusic() { f.calls = append(f.calls, "music+") }
func (f *fakePlayer) StopMusic()  { f.calls = append(f.calls, "music-") }

func TestHandlerRoutesEvents(t *testing.T) {
	fp := &fakePlayer{}
	q := event.NewEventQueue()
	router := event.NewRouter[struct{}](q)
	router.Register(NewHandler[struct{}](fp))

	q.PushAll([]event.GameEvent{
		{Type: event.EventPhaseChanged},
		{Type: event.EventMusicStart},
		{Type: event.EventJumped},
		{Type: event.EventCoinCollected, Value: 3},
		{Type: event.EventMushroomCollected, Value: 1},
		{Type: event.EventEnemyStomped},
		{Type: event.EventPlayerHurt},
		{Type: event.EventPlayerDied},
		{Type: event.EventMusicStop},
		{Type: event.EventGoalReached},
	})
	router.DispatchAll(struct{}{})

	// One coin cue per step regardless of count; phase changes are not audible
	assert.Equal(t, []string{
		"music-", "music+",
		"jump", "coin", "powerup", "stomp", "hurt", "hurt",
		"music-", "win",
	}, fp.calls)
}

func TestHandlerCoversEveryAudibleEvent(t *testing.T) {
	h := NewHandler[int](&fakePlayer{})
	assert.NotContains(t, h.EventTypes(), event.EventPhaseChanged)
	assert.Len(t, h.EventTypes(), 9)
}
