package audio

import (
	"errors"

	"github.com/lixenwraith/jumpman/parameter"
)

// Cue is a one-shot sound effect
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CueStomp
	CuePowerup
	CueHurt
	CueWin
	cueCount
)

// Spec returns the synthesis parameters of a cue
func (c Cue) Spec() parameter.CueSpec {
	switch c {
	case CueJump:
		return parameter.CueJump
	case CueCoin:
		return parameter.CueCoin
	case CueStomp:
		return parameter.CueStomp
	case CuePowerup:
		return parameter.CuePowerup
	case CueHurt:
		return parameter.CueHurt
	case CueWin:
		return parameter.CueWin
	}
	return parameter.CueSpec{}
}

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CueStomp:
		return "stomp"
	case CuePowerup:
		return "powerup"
	case CueHurt:
		return "hurt"
	case CueWin:
		return "win"
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrUnknownCue = errors.New("unknown audio cue")
)
