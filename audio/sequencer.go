package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/jumpman/parameter"
)

// Sequencer is an endless chiptune loop: square-wave melody and bass over a kick/noise drum line
// Stream never reports exhaustion; stop it by pausing its beep.Ctrl
type Sequencer struct {
	rate           beep.SampleRate
	samplesPerStep int
	loopSamples    int
	fadeSamples    int

	pos int
	rng uint32
}

// NewSequencer creates the loop at the configured tempo; sixteenth-note steps
func NewSequencer(rate beep.SampleRate) *Sequencer {
	stepSeconds := 60.0 / parameter.MusicBPM / 4
	perStep := int(math.Round(stepSeconds * float64(rate)))
	return &Sequencer{
		rate:           rate,
		samplesPerStep: perStep,
		loopSamples:    perStep * parameter.MusicSteps,
		fadeSamples:    rate.N(parameter.MusicFade),
		rng:            parameter.MusicNoiseSeed,
	}
}

func (s *Sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.sample()
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		if s.pos >= s.loopSamples {
			s.pos = 0
		}
	}
	return len(samples), true
}

func (s *Sequencer) Err() error { return nil }

// Step returns the sixteenth-note step currently playing
func (s *Sequencer) Step() int {
	return s.pos / s.samplesPerStep
}

func (s *Sequencer) sample() float64 {
	step := s.pos / s.samplesPerStep
	stepPos := float64(s.pos%s.samplesPerStep) / float64(s.samplesPerStep)
	t := float64(s.pos) / float64(s.rate)

	noteEnv := 1.0
	if stepPos < 0.08 {
		noteEnv = stepPos / 0.08
	} else if stepPos > 0.85 {
		noteEnv = (1 - stepPos) / 0.15
	}

	var v float64
	if f := NoteFreq(parameter.MusicMelody[step]); f > 0 {
		v += square(t, f) * 0.18 * noteEnv
	}
	if f := NoteFreq(parameter.MusicBass[step]); f > 0 {
		v += square(t, f) * 0.16 * noteEnv
	}

	switch parameter.MusicDrums[step] {
	case 1:
		env := math.Pow(1-stepPos, 4)
		localT := stepPos * float64(s.samplesPerStep) / float64(s.rate)
		kick := 60 + 90*(1-stepPos)
		v += math.Sin(localT*kick*2*math.Pi) * 0.25 * env
	case 2:
		env := math.Pow(1-stepPos, 2.5)
		v += s.noise() * 0.16 * env
	}

	// Fade the loop seam
	if s.pos < s.fadeSamples {
		v *= float64(s.pos) / float64(s.fadeSamples)
	} else if rem := s.loopSamples - s.pos; rem < s.fadeSamples {
		v *= float64(rem) / float64(s.fadeSamples)
	}

	return max(-1, min(1, v))
}

func square(t, freq float64) float64 {
	_, frac := math.Modf(t * freq)
	return wave(WaveSquare, frac)
}

// noise is a xorshift32 sample in [-1, 1]
func (s *Sequencer) noise() float64 {
	s.rng ^= s.rng << 13
	s.rng ^= s.rng >> 17
	s.rng ^= s.rng << 5
	return float64(s.rng)/math.MaxUint32*2 - 1
}
