package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/hay-kot/tasklist/internal/core/config"
)

// KeyMap holds the resolved bindings for both focus areas.
type KeyMap struct {
	// input focus
	Add       key.Binding
	FocusList key.Binding

	// list focus
	Toggle     key.Binding
	Delete     key.Binding
	Up         key.Binding
	Down       key.Binding
	FocusInput key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from the configured action → keys map.
// Actions missing from keys fall back to the built-in defaults.
func NewKeyMap(keys map[string][]string) KeyMap {
	defaults := config.DefaultKeys()
	get := func(action string) []string {
		if ks, ok := keys[action]; ok && len(ks) > 0 {
			return ks
		}
		return defaults[action]
	}

	bind := func(action, help string) key.Binding {
		ks := get(action)
		return key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(displayKey(ks[0]), help),
		)
	}

	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys(keyEnter),
			key.WithHelp(keyEnter, "add"),
		),
		FocusList:  bind(config.ActionFocusList, "tasks"),
		Toggle:     bind(config.ActionToggle, "toggle"),
		Delete:     bind(config.ActionDelete, "delete"),
		Up:         bind(config.ActionUp, "up"),
		Down:       bind(config.ActionDown, "down"),
		FocusInput: bind(config.ActionFocusInput, "new task"),
		Quit:       bind(config.ActionQuit, "quit"),
	}
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// helpKeys adapts a slice of bindings to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k KeyMap) inputHelp() helpKeys {
	return helpKeys{k.Add, k.FocusList, quitBinding}
}

func (k KeyMap) listHelp() helpKeys {
	return helpKeys{k.Up, k.Down, k.Toggle, k.Delete, k.FocusInput, k.Quit}
}

var quitBinding = key.NewBinding(
	key.WithKeys(keyCtrlC),
	key.WithHelp(keyCtrlC, "quit"),
)
