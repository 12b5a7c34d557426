package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RookieChen4/git-commit/internal/wizard"
)

// SelectScreen picks one option of a select step.
type SelectScreen struct {
	theme  Theme
	keys   keyMap
	engine *wizard.Engine
}

// NewSelectScreen creates a screen for the engine's current select step.
func NewSelectScreen(theme Theme, engine *wizard.Engine) *SelectScreen {
	return &SelectScreen{theme: theme, keys: newKeyMap(), engine: engine}
}

func (s *SelectScreen) Init() tea.Cmd { return nil }

func (s *SelectScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Up):
		_ = s.engine.Handle(wizard.Event{Type: wizard.EventUp})
	case key.Matches(keyMsg, s.keys.Down):
		_ = s.engine.Handle(wizard.Event{Type: wizard.EventDown})
	case key.Matches(keyMsg, s.keys.Unselect):
		_ = s.engine.Handle(wizard.Event{Type: wizard.EventUnselect})
	case key.Matches(keyMsg, s.keys.Submit):
		return s, submitCmd
	case key.Matches(keyMsg, s.keys.Cancel):
		return s, cancelCmd
	}

	return s, nil
}

func (s *SelectScreen) View() string {
	snap := s.engine.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + renderPrompt(s.theme, snap) + "\n\n")

	for i, opt := range snap.Options {
		if snap.HasCursor && i == snap.Cursor {
			b.WriteString("  " + s.theme.Cursor.Render("▸ "+opt.Label))
		} else {
			b.WriteString("    " + opt.Label)
		}
		b.WriteString("\n")
	}

	if !snap.HasCursor {
		b.WriteString("\n  " + s.theme.Dim.Render("nothing selected, press ↓ to choose") + "\n")
	}

	return b.String()
}

func (s *SelectScreen) StatusHints() []KeyHint {
	return hints(s.keys.Up, s.keys.Down, s.keys.Unselect, s.keys.Submit, s.keys.Cancel)
}
