package tui

import (
	"strings"
)

// Panel renders a titled block of pre-formatted lines, clipped to a fixed
// height with a "more" indicator when lines are hidden.
type Panel struct {
	theme  Theme
	title  string
	lines  []string
	height int
}

// NewPanel creates a panel showing content under title.
func NewPanel(theme Theme, title string, content string, height int) Panel {
	trimmed := strings.TrimRight(content, "\n")

	var lines []string
	if trimmed != "" {
		lines = strings.Split(trimmed, "\n")
	}

	return Panel{
		theme:  theme,
		title:  title,
		lines:  lines,
		height: height,
	}
}

// Empty reports whether the panel has no lines.
func (p Panel) Empty() bool {
	return len(p.lines) == 0
}

func (p Panel) View() string {
	var b strings.Builder

	b.WriteString(p.theme.Active.Render(p.title))
	b.WriteByte('\n')

	viewLines := p.height - 1
	if viewLines < 1 {
		viewLines = 1
	}

	// Reserve a line for the indicator when the content does not fit.
	hasMore := len(p.lines) > viewLines
	if hasMore {
		viewLines--
	}

	end := viewLines
	if end > len(p.lines) {
		end = len(p.lines)
	}

	for _, line := range p.lines[:end] {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if hasMore {
		remaining := len(p.lines) - end
		b.WriteString(p.theme.Dim.Render("▼ " + strings.Repeat(".", 3) + " " + itoa(remaining) + " more"))
	}

	return b.String()
}

// itoa converts a small non-negative int to a string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	digits := make([]byte, 0, 4)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}
