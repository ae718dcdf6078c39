package input

// Latch bridges per-frame capture and per-step consumption
// Edges are OR-accumulated across frames so a press and release between two steps both survive,
// and cleared on Consume so an idle step never replays them
type Latch struct {
	pending StepInput
}

// Capture merges one frame of input; held state is replaced, edges accumulate
func (l *Latch) Capture(f Frame) {
	l.pending.Left = f.Left
	l.pending.Right = f.Right
	l.pending.JumpPressed = l.pending.JumpPressed || f.JumpPressed
	l.pending.JumpReleased = l.pending.JumpReleased || f.JumpReleased
	l.pending.StartPressed = l.pending.StartPressed || f.Start
	l.pending.RestartPressed = l.pending.RestartPressed || f.Restart
	l.pending.QuitPressed = l.pending.QuitPressed || f.Quit
}

// Consume returns the latched input for one step and clears its edges
func (l *Latch) Consume() StepInput {
	snapshot := l.pending
	l.pending = StepInput{Left: snapshot.Left, Right: snapshot.Right}
	return snapshot
}

// Pending reports the latched state without consuming it
func (l *Latch) Pending() StepInput {
	return l.pending
}
