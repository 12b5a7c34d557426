package tui

import tea "github.com/charmbracelet/bubbletea"

// KeyHint describes a keybinding shown in the status bar.
type KeyHint struct {
	Key  string
	Desc string
}

// Screen defines the interface each step screen must implement.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	StatusHints() []KeyHint
}

// submitMsg asks the root model to submit the current step.
type submitMsg struct{}

// cancelMsg asks the root model to abort the wizard.
type cancelMsg struct{}

// logLoadedMsg carries the recent commit log for the side panel.
type logLoadedMsg struct {
	lines []string
	err   error
}

func submitCmd() tea.Msg { return submitMsg{} }

func cancelCmd() tea.Msg { return cancelMsg{} }
