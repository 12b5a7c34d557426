package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RookieChen4/git-commit/internal/wizard"
)

// TextScreen collects a free-text answer. Keystrokes are fed to the engine,
// which owns the buffer.
type TextScreen struct {
	theme  Theme
	keys   keyMap
	engine *wizard.Engine
}

// NewTextScreen creates a screen for the engine's current text step.
func NewTextScreen(theme Theme, engine *wizard.Engine) *TextScreen {
	return &TextScreen{theme: theme, keys: newKeyMap(), engine: engine}
}

func (s *TextScreen) Init() tea.Cmd { return nil }

func (s *TextScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Submit):
		return s, submitCmd
	case key.Matches(keyMsg, s.keys.Cancel):
		return s, cancelCmd
	case key.Matches(keyMsg, s.keys.Backspace):
		_ = s.engine.Handle(wizard.Event{Type: wizard.EventBackspace})
		return s, nil
	}

	for _, r := range typedRunes(keyMsg) {
		_ = s.engine.Handle(wizard.Char(r))
	}

	return s, nil
}

func (s *TextScreen) View() string {
	snap := s.engine.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + renderPrompt(s.theme, snap) + "\n\n")
	b.WriteString("  " + s.theme.Cursor.Render("> ") + snap.Text + s.theme.Cursor.Render("█") + "\n")

	return b.String()
}

func (s *TextScreen) StatusHints() []KeyHint {
	return hints(s.keys.Submit, s.keys.Backspace, s.keys.Cancel)
}

// renderPrompt renders "[n/total] prompt" with a marker on required steps.
func renderPrompt(theme Theme, snap wizard.Snapshot) string {
	progress := theme.Dim.Render("[" + itoa(snap.StepIndex+1) + "/" + itoa(snap.TotalSteps) + "]")
	prompt := theme.Title.Render(snap.Prompt)

	if snap.Required {
		prompt += theme.Warning.Render(" *")
	}

	return progress + " " + prompt
}
