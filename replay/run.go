package replay

import (
	"github.com/lixenwraith/jumpman/engine"
	"github.com/lixenwraith/jumpman/event"
	"github.com/lixenwraith/jumpman/input"
)

// Run steps g exactly ticks times, feeding inputs in order and idle input past their end
// Returns the inputs actually used, suitable for recording, and every emitted event
func Run(g *engine.Game, inputs []input.StepInput, ticks int) ([]input.StepInput, []event.GameEvent) {
	used := make([]input.StepInput, 0, ticks)
	var events []event.GameEvent
	for i := 0; i < ticks; i++ {
		var in input.StepInput
		if i < len(inputs) {
			in = inputs[i]
		}
		used = append(used, in)
		events = append(events, g.Step(in)...)
	}
	return used, events
}

// Recorder captures the input of every step a game runs
type Recorder struct {
	level  string
	inputs []input.StepInput
}

// NewRecorder attaches to g and records each step's input from now on
func NewRecorder(g *engine.Game, level string) *Recorder {
	r := &Recorder{level: level}
	g.ObserveSteps(r.record)
	return r
}

func (r *Recorder) record(in input.StepInput) {
	r.inputs = append(r.inputs, in)
}

// Replay returns the recording so far
func (r *Recorder) Replay() Replay {
	return Replay{
		Version: Version,
		Level:   r.level,
		Inputs:  append([]input.StepInput(nil), r.inputs...),
	}
}

// Len is the number of recorded steps
func (r *Recorder) Len() int {
	return len(r.inputs)
}
