package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/jumpman/parameter"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(parameter.DefaultVolume)

	assert.NotPanics(t, func() {
		for c := CueJump; c < cueCount; c++ {
			sm.Play(c)
		}
		sm.StartMusic()
		sm.StopMusic()
		sm.Cleanup()
	})
	assert.False(t, sm.MusicPlaying())
}

// TestSoundManagerInitialization verifies the manager can be initialized, used and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(parameter.DefaultVolume)

	// Speaker initialization may fail in CI without an audio device; the game runs without audio
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	// Second initialization is a no-op
	require.NoError(t, sm.Initialize())

	sm.StartMusic()
	assert.True(t, sm.MusicPlaying())
	sm.Play(CueCoin)
	sm.StopMusic()
	assert.False(t, sm.MusicPlaying())
}

func TestCueStreamLength(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	for c := CueJump; c < cueCount; c++ {
		s, err := NewCue(c, rate, 1)
		require.NoError(t, err, c.String())

		want := rate.N(c.Spec().Duration)
		buf := make([][2]float64, 512)
		total := 0
		peak := 0.0
		for {
			n, ok := s.Stream(buf)
			total += n
			for _, smp := range buf[:n] {
				peak = max(peak, smp[0])
			}
			if !ok || n < len(buf) {
				break
			}
		}
		assert.Equal(t, want, total, c.String())
		assert.LessOrEqual(t, peak, c.Spec().Amplitude+1e-9, c.String())
		assert.Greater(t, peak, 0.0, c.String())
	}

	_, err := NewCue(cueCount, rate, 1)
	assert.ErrorIs(t, err, ErrUnknownCue)
}

func TestSequencerLoops(t *testing.T) {
	seq := NewSequencer(beep.SampleRate(parameter.AudioSampleRate))
	buf := make([][2]float64, seq.loopSamples)

	n, ok := seq.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)
	assert.Equal(t, 0, seq.Step(), "wrapped to the first step")

	for _, smp := range buf {
		require.LessOrEqual(t, smp[0], 1.0)
		require.GreaterOrEqual(t, smp[0], -1.0)
		require.Equal(t, smp[0], smp[1])
	}
	// Loop seam fades in from silence
	assert.Zero(t, buf[0][0])
}

func TestNoteFreq(t *testing.T) {
	assert.InDelta(t, 440.0, NoteFreq(69), 1e-9)
	assert.InDelta(t, 880.0, NoteFreq(81), 1e-9)
	assert.Zero(t, NoteFreq(0))
	assert.Zero(t, NoteFreq(200))
}
