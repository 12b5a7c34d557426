package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the bindings used by the step screens. Letter aliases for
// navigation are only honoured on select steps, where nothing is typed.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Unselect  key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Unselect: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "clear"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// hints converts bindings into status bar hints.
func hints(bindings ...key.Binding) []KeyHint {
	out := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, KeyHint{Key: h.Key, Desc: h.Desc})
	}

	return out
}

// typedRunes returns the characters carried by a key press, if any.
func typedRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}

	return nil
}
