package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCachesPointers(t *testing.T) {
	r := NewRegistry()
	ticks := r.Ints.Get("game.ticks")
	ticks.Add(3)

	assert.Same(t, ticks, r.Ints.Get("game.ticks"))
	assert.Equal(t, int64(3), r.Ints.Get("game.ticks").Load())
	assert.True(t, r.Ints.Has("game.ticks"))
	assert.False(t, r.Floats.Has("game.ticks"))
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("game.score").Store(1200)
	r.Ints.Get("game.deaths").Store(2)
	r.Floats.Get("engine.frame_ms").Set(16.666)

	assert.Equal(t, 3, r.TotalCount())
	assert.Equal(t, []string{
		"game.deaths=2",
		"game.score=1200",
		"engine.frame_ms=16.67",
	}, r.Lines())
}
