package input

// StepInput is the intent consumed by exactly one simulation step
// Left/Right are held state; the rest are edges
type StepInput struct {
	Left           bool `json:"l"`
	Right          bool `json:"r"`
	JumpPressed    bool `json:"jp"`
	JumpReleased   bool `json:"jr"`
	StartPressed   bool `json:"start"`
	RestartPressed bool `json:"restart"`
	QuitPressed    bool `json:"quit"`
}

// MoveX is the horizontal intent in {-1, 0, 1}
func (in StepInput) MoveX() float64 {
	x := 0.0
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	return x
}

// Frame is what the input collaborator reports once per rendered frame
type Frame struct {
	Left, Right  bool
	JumpPressed  bool
	JumpReleased bool
	Start        bool
	Restart      bool
	Quit         bool
}
