package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpEntry is one gesture or key in the overlay.
type helpEntry struct {
	input string
	desc  string
}

var helpEntries = []helpEntry{
	{"drag sash", "resize the left pane"},
	{"double-click sash", "reset to the default width"},
	{"↑/↓, pgup/pgdn", "scroll content"},
	{"y", "copy current width"},
	{"?", "toggle this help"},
	{"q", "quit"},
}

// renderHelpOverlay draws a centered help box. Any key dismisses it.
func renderHelpOverlay(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true).Width(18)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)

	var rows []string
	rows = append(rows, TitleStyle.Render("sashpane help"), "")
	for _, e := range helpEntries {
		rows = append(rows, keyStyle.Render(e.input)+descStyle.Render(e.desc))
	}
	rows = append(rows, "", StatusStyle.Render("press any key to close"))

	box := FocusedPanelStyle.
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
