package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; latency vs underrun trade
	AudioBufferDuration = 100 * time.Millisecond
)

// Mix levels
const (
	DefaultVolume = 0.45
	MusicVolume   = 0.22
)

// Cue envelope shared by every effect
const (
	CueAttack  = 10 * time.Millisecond
	CueRelease = 20 * time.Millisecond
)

// CueSpec describes a single sine blip
type CueSpec struct {
	Freq      float64
	Duration  time.Duration
	Amplitude float64
}

// Cue table
var (
	CueJump    = CueSpec{Freq: 720, Duration: 120 * time.Millisecond, Amplitude: 0.25}
	CueCoin    = CueSpec{Freq: 980, Duration: 80 * time.Millisecond, Amplitude: 0.28}
	CueStomp   = CueSpec{Freq: 220, Duration: 100 * time.Millisecond, Amplitude: 0.35}
	CuePowerup = CueSpec{Freq: 540, Duration: 180 * time.Millisecond, Amplitude: 0.28}
	CueHurt    = CueSpec{Freq: 160, Duration: 160 * time.Millisecond, Amplitude: 0.32}
	CueWin     = CueSpec{Freq: 660, Duration: 220 * time.Millisecond, Amplitude: 0.24}
)

// Chiptune loop
const (
	MusicBPM   = 140
	MusicSteps = 64
)

// MIDI note per sixteenth step; 0 rests
var (
	MusicMelody = [MusicSteps]int{
		69, 0, 72, 0, 76, 0, 72, 0, 69, 0, 67, 0, 64, 0, 67, 0, 72, 0, 76, 0, 79, 0, 76, 0, 72, 0,
		71, 0, 67, 0, 69, 0, 76, 0, 79, 0, 83, 0, 79, 0, 76, 0, 74, 0, 71, 0, 74, 0, 72, 0, 76, 0,
		79, 0, 76, 0, 72, 0, 71, 0, 67, 0, 69, 0,
	}
	MusicBass = [MusicSteps]int{
		45, 0, 45, 0, 48, 0, 45, 0, 43, 0, 43, 0, 40, 0, 43, 0, 45, 0, 45, 0, 48, 0, 45, 0, 43, 0,
		43, 0, 40, 0, 43, 0, 48, 0, 48, 0, 52, 0, 48, 0, 47, 0, 47, 0, 43, 0, 47, 0, 45, 0, 45, 0,
		48, 0, 45, 0, 43, 0, 43, 0, 40, 0, 43, 0,
	}
	// 1 kick, 2 noise snare
	MusicDrums = [MusicSteps]uint8{
		1, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 2, 0, 0, 1, 0, 1, 0, 0, 0, 2, 0, 1, 0, 1, 0, 2, 0, 0, 0,
		1, 0, 1, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 2, 0, 0, 1, 0, 1, 0, 0, 0, 2, 0, 1, 0, 1, 0, 2, 0,
		0, 0, 1, 0,
	}
)

// Loop seam fade and drum noise seed
const (
	MusicFade      = 50 * time.Millisecond
	MusicNoiseSeed = 0x12345678
)
