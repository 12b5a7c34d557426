package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RookieChen4/git-commit/internal/wizard"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTextScreen_TypingFeedsEngine(t *testing.T) {
	engine := newTestEngine(t)
	screen := NewTextScreen(NewTheme(), engine)

	screen.Update(runes("T"))
	screen.Update(runes("-1"))
	screen.Update(tea.KeyMsg{Type: tea.KeySpace})
	screen.Update(runes("k"))

	assert.Equal(t, "T-1 k", engine.Text())
}

func TestTextScreen_Backspace(t *testing.T) {
	engine := newTestEngine(t)
	screen := NewTextScreen(NewTheme(), engine)

	screen.Update(runes("ab"))
	screen.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "a", engine.Text())
}

func TestTextScreen_EnterRequestsSubmit(t *testing.T) {
	screen := NewTextScreen(NewTheme(), newTestEngine(t))

	_, cmd := screen.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(submitMsg)
	assert.True(t, ok)
}

func TestTextScreen_EscRequestsCancel(t *testing.T) {
	screen := NewTextScreen(NewTheme(), newTestEngine(t))

	_, cmd := screen.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(cancelMsg)
	assert.True(t, ok)
}

func TestTextScreen_ViewShowsPromptAndProgress(t *testing.T) {
	engine := newTestEngine(t)
	screen := NewTextScreen(NewTheme(), engine)
	screen.Update(runes("T-9"))

	view := screen.View()
	assert.Contains(t, view, "Task ID")
	assert.Contains(t, view, "[1/3]")
	assert.Contains(t, view, "T-9")
}

func TestTextScreen_Hints(t *testing.T) {
	screen := NewTextScreen(NewTheme(), newTestEngine(t))

	hints := screen.StatusHints()
	require.Len(t, hints, 3)
	assert.Equal(t, "enter", hints[0].Key)
	assert.Equal(t, "esc", hints[2].Key)
}

func selectStepEngine(t *testing.T) *wizard.Engine {
	t.Helper()

	engine := newTestEngine(t)
	require.NoError(t, engine.Submit("T-1"))
	require.Equal(t, wizard.ModeSelect, engine.Mode())
	return engine
}

func TestSelectScreen_Navigation(t *testing.T) {
	engine := selectStepEngine(t)
	screen := NewSelectScreen(NewTheme(), engine)

	_, ok := engine.Cursor()
	assert.False(t, ok)

	screen.Update(tea.KeyMsg{Type: tea.KeyDown})
	cursor, ok := engine.Cursor()
	assert.True(t, ok)
	assert.Equal(t, 0, cursor)

	screen.Update(runes("j"))
	cursor, _ = engine.Cursor()
	assert.Equal(t, 1, cursor)

	// Wraps back to the first option.
	screen.Update(tea.KeyMsg{Type: tea.KeyDown})
	cursor, _ = engine.Cursor()
	assert.Equal(t, 0, cursor)

	screen.Update(runes("k"))
	cursor, _ = engine.Cursor()
	assert.Equal(t, 1, cursor)

	screen.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, ok = engine.Cursor()
	assert.False(t, ok)
}

func TestSelectScreen_LettersDoNotType(t *testing.T) {
	engine := selectStepEngine(t)
	screen := NewSelectScreen(NewTheme(), engine)

	screen.Update(runes("x"))
	assert.Empty(t, engine.Text())
}

func TestSelectScreen_ViewMarksCursor(t *testing.T) {
	engine := selectStepEngine(t)
	screen := NewSelectScreen(NewTheme(), engine)

	view := screen.View()
	assert.Contains(t, view, "feat: A new feature")
	assert.Contains(t, view, "nothing selected")
	assert.NotContains(t, view, "▸")

	screen.Update(tea.KeyMsg{Type: tea.KeyDown})
	screen.Update(tea.KeyMsg{Type: tea.KeyDown})

	view = screen.View()
	assert.Contains(t, view, "▸ fix: A bug fix")
	assert.NotContains(t, view, "nothing selected")
}

func TestSelectScreen_EnterAndEsc(t *testing.T) {
	screen := NewSelectScreen(NewTheme(), selectStepEngine(t))

	_, cmd := screen.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(submitMsg)
	assert.True(t, ok)

	_, cmd = screen.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok = cmd().(cancelMsg)
	assert.True(t, ok)
}

func TestPanel_ClipsWithIndicator(t *testing.T) {
	panel := NewPanel(NewTheme(), "Recent commits", "a\nb\nc\nd\ne", 4)

	view := panel.View()
	assert.Contains(t, view, "Recent commits")
	assert.Contains(t, view, "a")
	assert.Contains(t, view, "b")
	assert.NotContains(t, view, "\nc\n")
	assert.Contains(t, view, "3 more")
}

func TestPanel_FitsWithoutIndicator(t *testing.T) {
	panel := NewPanel(NewTheme(), "Log", "one\ntwo\n", 5)

	assert.False(t, panel.Empty())
	assert.NotContains(t, panel.View(), "more")
}

func TestPanel_Empty(t *testing.T) {
	assert.True(t, NewPanel(NewTheme(), "Log", "\n", 5).Empty())
}

func TestItoa(t *testing.T) {
	assert.Equal(t, "0", itoa(0))
	assert.Equal(t, "7", itoa(7))
	assert.Equal(t, "120", itoa(120))
}
