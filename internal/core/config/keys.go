package config

import (
	"maps"
	"slices"
)

// Key actions. List actions apply while the task list has focus; input
// actions apply while the text field has focus.
const (
	ActionToggle     = "toggle"
	ActionDelete     = "delete"
	ActionUp         = "up"
	ActionDown       = "down"
	ActionFocusInput = "focus_input"
	ActionQuit       = "quit"

	ActionFocusList = "focus_list"
)

var (
	listActions  = []string{ActionToggle, ActionDelete, ActionUp, ActionDown, ActionFocusInput, ActionQuit}
	inputActions = []string{ActionFocusList}
)

// reservedInputKeys are handled by the text field itself and cannot be
// rebound while it has focus.
var reservedInputKeys = []string{"enter", "ctrl+c"}

// DefaultKeys returns the built-in key map.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		ActionToggle:     {"enter", " ", "x"},
		ActionDelete:     {"d", "delete", "backspace"},
		ActionUp:         {"up", "k"},
		ActionDown:       {"down", "j"},
		ActionFocusInput: {"a", "i", "tab"},
		ActionQuit:       {"q"},
		ActionFocusList:  {"tab", "esc", "down"},
	}
}

// mergeKeys merges user keys into defaults.
// User entries replace the default keys for the same action.
func mergeKeys(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))
	maps.Copy(result, defaults)
	maps.Copy(result, user)
	return result
}

func isKnownAction(action string) bool {
	return slices.Contains(listActions, action) || slices.Contains(inputActions, action)
}
