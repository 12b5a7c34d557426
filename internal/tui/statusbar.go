package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders keybinding hints for the bottom status bar,
// clipped to width when it is known.
func RenderStatusBar(theme Theme, hints []KeyHint, width int) string {
	var parts []string

	for _, h := range hints {
		key := theme.StatusKey.Render(h.Key)
		parts = append(parts, key+" "+h.Desc)
	}

	content := strings.Join(parts, "  ")

	style := theme.StatusBar
	if width > 0 {
		style = style.MaxWidth(width)
	}

	return style.Render(content)
}

// clipWidth truncates every line of s to width cells.
func clipWidth(s string, width int) string {
	if width <= 0 {
		return s
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
