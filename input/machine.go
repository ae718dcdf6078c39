package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard turns terminal key events into per-frame input
// Terminals deliver presses and auto-repeats but no releases, so a key counts as held
// until holdWindow passes without a repeat; expiry of the jump key emits the release edge
type Keyboard struct {
	table      *KeyTable
	holdWindow time.Duration

	lastLeft  time.Time
	lastRight time.Time
	lastJump  time.Time
	jumpHeld  bool

	frame Frame
	exit  bool
}

// NewKeyboard creates a keyboard reader; a nil table uses the defaults
func NewKeyboard(table *KeyTable, holdWindow time.Duration) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{table: table, holdWindow: holdWindow}
}

// HandleKey records one key event observed at now
func (k *Keyboard) HandleKey(ev *tcell.EventKey, now time.Time) {
	switch k.table.Lookup(ev) {
	case ActionLeft:
		k.lastLeft = now
		k.lastRight = time.Time{}
	case ActionRight:
		k.lastRight = now
		k.lastLeft = time.Time{}
	case ActionJump:
		if !k.jumpHeld {
			k.frame.JumpPressed = true
			k.jumpHeld = true
		}
		k.lastJump = now
	case ActionStart:
		k.frame.Start = true
	case ActionRestart:
		k.frame.Restart = true
	case ActionQuit:
		k.frame.Quit = true
	case ActionExit:
		k.exit = true
	}
}

// Poll returns the frame observed since the previous Poll and resets its edges
func (k *Keyboard) Poll(now time.Time) Frame {
	f := k.frame
	f.Left = k.held(k.lastLeft, now)
	f.Right = k.held(k.lastRight, now)

	if k.jumpHeld && !k.held(k.lastJump, now) {
		k.jumpHeld = false
		f.JumpReleased = true
	}

	k.frame = Frame{}
	return f
}

// ExitRequested reports whether the exit binding was pressed
func (k *Keyboard) ExitRequested() bool {
	return k.exit
}

func (k *Keyboard) held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < k.holdWindow
}
