package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lowercase reverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig turns configured key → action name bindings into a sparse override table
// Keys are a single character, a rune alias, or a terminal key name such as "Left" or "Ctrl-C"
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}

	for keyStr, actionName := range bindings {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = action
			continue
		}
		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.Keys[k] = action
	}

	return kt, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a copy of base with override applied
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(base.Keys)),
		Runes: make(map[rune]Action, len(base.Runes)),
	}
	for k, v := range base.Keys {
		result.Keys[k] = v
	}
	for r, v := range base.Runes {
		result.Runes[r] = v
	}
	if override == nil {
		return result
	}

	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
