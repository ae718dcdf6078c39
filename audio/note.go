package audio

import "math"

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number; out of range and rests are 0
func NoteFreq(midi int) float64 {
	if midi <= 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}
