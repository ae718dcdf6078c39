package input

import "sort"

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve configured action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"left":    ActionLeft,
	"right":   ActionRight,
	"jump":    ActionJump,
	"start":   ActionStart,
	"restart": ActionRestart,
	"quit":    ActionQuit,
	"exit":    ActionExit,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the canonical name of a
func (a Action) String() string {
	for name, action := range actionRegistry {
		if action == a {
			return name
		}
	}
	return "unknown"
}
