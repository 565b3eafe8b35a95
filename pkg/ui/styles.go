package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired with extended semantic colors
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Accent colors
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES - Split view panes and the draggable sash between them
// ══════════════════════════════════════════════════════════════════════════════

var (
	// PanelStyle is the default style for unfocused panes
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight)

	// FocusedPanelStyle is the style for the pane being resized
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	// SashStyle renders the idle drag handle column
	SashStyle = lipgloss.NewStyle().
			Foreground(ColorBgHighlight)

	// SashActiveStyle renders the handle while a drag is in progress
	SashActiveStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StatusStyle renders the one-line footer
	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext)

	// StatusAccentStyle highlights values inside the footer
	StatusAccentStyle = lipgloss.NewStyle().
				Foreground(ColorInfo).
				Bold(true)

	// TitleStyle renders pane headers
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// Glyphs for the sash column.
const (
	sashRune       = "│"
	sashActiveRune = "┃"
	sashGripRune   = "╂"
)

// RenderSash renders the drag handle as a vertical bar of the given
// height with a grip mark at its middle. Active drags use the heavy
// rune and accent color.
func RenderSash(height int, active bool) string {
	if height <= 0 {
		return ""
	}
	bar, grip := sashRune, sashGripRune
	style := SashStyle
	if active {
		bar = sashActiveRune
		style = SashActiveStyle
	}

	lines := make([]string, height)
	for i := range lines {
		lines[i] = bar
	}
	lines[height/2] = grip
	return style.Render(strings.Join(lines, "\n"))
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}

// RenderGauge renders a min-to-max position gauge for the current
// width. Used in the status pane so resizes have visible feedback even
// when both panes are otherwise empty.
func RenderGauge(width, lo, hi, cells int) string {
	if cells < 3 {
		cells = 3
	}
	span := hi - lo
	pos := 0
	if span > 0 {
		pos = (width - lo) * (cells - 1) / span
	}
	if pos < 0 {
		pos = 0
	}
	if pos > cells-1 {
		pos = cells - 1
	}

	var b strings.Builder
	for i := 0; i < cells; i++ {
		if i == pos {
			b.WriteString("●")
		} else {
			b.WriteString("─")
		}
	}
	return lipgloss.NewStyle().Foreground(ColorPrimary).Render(b.String())
}
