package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/jumpman/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager manages all game audio
// Every method is safe before Initialize and after Cleanup; calls then do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; clearing the mixer leaves it idle
	sm.music = nil
	sm.initialized = false
}

// Play mixes in a one-shot cue
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := NewCue(c, sampleRate, sm.volume)
	if err != nil {
		log.Printf("Audio cue %d: %v", c, err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartMusic starts the loop from its beginning; a running loop is left alone
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil && !sm.music.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(NewSequencer(sampleRate), parameter.MusicVolume*sm.volume)}
	speaker.Lock()
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic pauses and drops the loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	// Drained streamers are removed by the mixer
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// MusicPlaying reports whether the loop is active
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}
