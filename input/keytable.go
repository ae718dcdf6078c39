package input

import "github.com/gdamore/tcell/v2"

// Action is a semantic key binding
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionStart
	ActionRestart
	ActionQuit // back to title
	ActionExit // leave the program
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the stock bindings: arrows/WASD, space to jump, Enter, R, Esc/Q
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionJump,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionExit,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'A': ActionLeft,
			'd': ActionRight,
			'D': ActionRight,
			'w': ActionJump,
			'W': ActionJump,
			' ': ActionJump,
			'r': ActionRestart,
			'R': ActionRestart,
			'q': ActionQuit,
			'Q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
