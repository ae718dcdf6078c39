package engine

// Phase is the top-level game state
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseLevelComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseLevelComplete:
		return "LevelComplete"
	}
	return "Unknown"
}
