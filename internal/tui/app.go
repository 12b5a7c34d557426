package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RookieChen4/git-commit/internal/message"
	"github.com/RookieChen4/git-commit/internal/wizard"
)

// Callbacks provides optional data sources for the side panels.
type Callbacks struct {
	// RecentLog returns recent commit log lines for the right-hand panel.
	RecentLog func() ([]string, error)
}

// WizardModel is the root Bubble Tea model for the full-screen TUI. It owns
// no wizard state of its own; everything is read from the engine.
type WizardModel struct {
	theme     Theme
	engine    *wizard.Engine
	screen    Screen
	callbacks Callbacks
	version   string
	warning   string
	logLines  []string
	logErr    error
	width     int
	height    int
}

// NewWizardModel creates a root model positioned on the engine's current step.
func NewWizardModel(engine *wizard.Engine, cb Callbacks, version string) WizardModel {
	theme := NewTheme()
	return WizardModel{
		theme:     theme,
		engine:    engine,
		screen:    screenFor(theme, engine),
		callbacks: cb,
		version:   version,
	}
}

func screenFor(theme Theme, engine *wizard.Engine) Screen {
	if engine.Mode() == wizard.ModeSelect {
		return NewSelectScreen(theme, engine)
	}

	return NewTextScreen(theme, engine)
}

func (m WizardModel) Init() tea.Cmd {
	return tea.Batch(m.screen.Init(), m.loadLog())
}

func (m WizardModel) loadLog() tea.Cmd {
	fn := m.callbacks.RecentLog
	if fn == nil {
		return nil
	}

	return func() tea.Msg {
		lines, err := fn()
		return logLoadedMsg{lines: lines, err: err}
	}
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.cancel()
		}

	case logLoadedMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		return m, nil

	case submitMsg:
		return m.submit()

	case cancelMsg:
		return m.cancel()
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.warning = ""
	}

	return m, cmd
}

func (m WizardModel) submit() (tea.Model, tea.Cmd) {
	err := m.engine.SubmitCurrent()
	switch {
	case errors.Is(err, wizard.ErrNoSelection):
		m.warning = "Select an option first."
		return m, nil
	case errors.Is(err, wizard.ErrEmptyAnswer):
		m.warning = "This step needs an answer."
		return m, nil
	case err != nil:
		return m, tea.Quit
	}

	m.warning = ""

	if m.engine.Status() != wizard.StatusActive {
		return m, tea.Quit
	}

	m.screen = screenFor(m.theme, m.engine)
	return m, m.screen.Init()
}

func (m WizardModel) cancel() (tea.Model, tea.Cmd) {
	_ = m.engine.Cancel()
	return m, tea.Quit
}

func (m WizardModel) View() string {
	if m.engine.Status() != wizard.StatusActive {
		return ""
	}

	snap := m.engine.Snapshot()

	// Title bar.
	titleLabel := "git-commit"
	if m.version != "" {
		titleLabel += " v" + m.version
	}

	titleText := m.theme.Title.Render(titleLabel)
	breadcrumb := RenderBreadcrumb(m.theme, breadcrumbSteps(m.engine.Steps(), snap))

	titleBar := titleText
	if breadcrumb != "" {
		titleBar += "  " + breadcrumb
	}

	// Separator line.
	sepWidth := m.width
	if sepWidth <= 0 {
		sepWidth = 40
	}

	separator := m.theme.Separator.Render(strings.Repeat("─", sepWidth))

	// Content area.
	contentHeight := contentHeightFromTerminal(m.height)
	content := m.mainColumn(snap)

	if panel, ok := m.logPanel(contentHeight); ok {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", panel)
	}

	content = padToHeight(content, contentHeight)

	// Status bar.
	statusBar := RenderStatusBar(m.theme, m.screen.StatusHints(), m.width)

	return clipWidth(titleBar, m.width) + "\n" + separator + "\n" + content + "\n" + statusBar
}

// mainColumn renders the step screen, any warning, the answer history and
// the live message preview.
func (m WizardModel) mainColumn(snap wizard.Snapshot) string {
	var b strings.Builder

	b.WriteString(m.screen.View())

	if m.warning != "" {
		b.WriteString("\n  " + m.theme.Warning.Render("! "+m.warning) + "\n")
	}

	if len(snap.Answers) > 0 {
		b.WriteString("\n  " + m.theme.Dim.Render("Answers") + "\n")
		for i, a := range snap.Answers {
			b.WriteString("  " + m.theme.Dim.Render(itoa(i+1)+".") + " " + a.Key + ": " + m.theme.Completed.Render(a.Value) + "\n")
		}
	}

	b.WriteString("\n  " + m.theme.Dim.Render("Message") + "\n")
	b.WriteString("  " + m.theme.Preview.Render(previewMessage(snap)) + "\n")

	return b.String()
}

// previewMessage assembles the answers so far plus the text being typed.
func previewMessage(snap wizard.Snapshot) string {
	answers := snap.Answers
	if snap.Mode == wizard.ModeText && snap.Text != "" {
		answers = append(answers, wizard.Answer{Key: snap.Key, Value: snap.Text})
	}

	return message.Assemble(answers)
}

// logPanel renders the recent commit log, hidden on narrow terminals or
// when no log was loaded.
func (m WizardModel) logPanel(height int) (string, bool) {
	if m.callbacks.RecentLog == nil {
		return "", false
	}

	if m.width > 0 && m.width < LogPanelWidth*2 {
		return "", false
	}

	content := strings.Join(m.logLines, "\n")
	if m.logErr != nil {
		content = m.theme.Error.Render("git log failed: " + m.logErr.Error())
	}

	panel := NewPanel(m.theme, "Recent commits", content, height-2)
	if panel.Empty() {
		return "", false
	}

	return m.theme.Panel.Width(LogPanelWidth).Render(panel.View()), true
}

// contentHeightFromTerminal calculates the content area height from the
// terminal height, subtracting the chrome lines (title + separator + status bar).
func contentHeightFromTerminal(termHeight int) int {
	if termHeight <= 0 {
		return ContentHeight
	}

	h := termHeight - ChromeLines
	if h < 1 {
		h = 1
	}

	return h
}

// padToHeight pads or truncates content to exactly targetHeight lines.
func padToHeight(content string, targetHeight int) string {
	content = strings.TrimRight(content, "\n")

	lines := strings.Split(content, "\n")
	for len(lines) < targetHeight {
		lines = append(lines, "")
	}

	if len(lines) > targetHeight {
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}

// Run drives engine through the full-screen TUI until it completes or is
// cancelled. The caller inspects the engine's status afterwards.
func Run(engine *wizard.Engine, cb Callbacks, version string) error {
	p := tea.NewProgram(NewWizardModel(engine, cb, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	// The program can exit without a cancel key, e.g. on SIGINT.
	if engine.Status() == wizard.StatusActive {
		_ = engine.Cancel()
	}

	return nil
}
