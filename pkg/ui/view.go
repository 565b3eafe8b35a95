package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Layout constraints for the split view.
const (
	minPaneCells     = 10 // never draw a pane narrower than this
	statusLines      = 1
	minContentHeight = 3
	paneChrome       = 2 // border cells per axis
)

// sashColumn returns the screen column the drag handle occupies.
func (m *Panel) sashColumn() int {
	return m.displayWidth()
}

// displayWidth is the drawn left-pane width: the logical width capped
// so the right pane keeps a usable minimum. The logical width itself is
// governed only by the configured bounds.
func (m *Panel) displayWidth() int {
	w := m.width
	if max := m.termWidth - minPaneCells - 1; w > max {
		w = max
	}
	if w < minPaneCells {
		w = minPaneCells
	}
	return w
}

// contentHeight is the vertical space available to the panes.
func (m *Panel) contentHeight() int {
	h := m.termHeight - statusLines
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

// refreshContent re-wraps the markdown body for the current pane width
// and resizes the viewport. Called on every width change, window resize
// and config reload.
func (m *Panel) refreshContent() {
	if !m.ready {
		return
	}
	innerW := m.displayWidth() - paneChrome
	if innerW < 1 {
		innerW = 1
	}
	innerH := m.contentHeight() - paneChrome - 1 // minus title line
	if innerH < 1 {
		innerH = 1
	}
	m.vp.Width = innerW
	m.vp.Height = innerH
	m.vp.SetContent(m.renderMarkdown(innerW))
}

// renderMarkdown renders the about document wrapped to the given width.
// Falls back to the raw source if the renderer fails.
func (m *Panel) renderMarkdown(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return m.rawContent
	}
	out, err := r.Render(m.rawContent)
	if err != nil {
		return m.rawContent
	}
	return out
}

// View implements tea.Model.
func (m *Panel) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.showHelp {
		return renderHelpOverlay(m.termWidth, m.termHeight)
	}

	height := m.contentHeight()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderContentPane(height),
		RenderSash(height, m.controller.Dragging()),
		m.renderStatusPane(height),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

// renderContentPane draws the resizable left pane.
func (m *Panel) renderContentPane(height int) string {
	style := PanelStyle
	if m.controller.Dragging() {
		style = FocusedPanelStyle
	}
	body := TitleStyle.Render("sashpane") + "\n" + m.vp.View()
	return style.
		Width(m.displayWidth() - paneChrome).
		Height(height - paneChrome).
		Render(body)
}

// renderStatusPane draws the right pane with live resize diagnostics.
func (m *Panel) renderStatusPane(height int) string {
	innerW := m.termWidth - m.displayWidth() - 1 - paneChrome
	if innerW < 1 {
		innerW = 1
	}

	gaugeCells := innerW - 2
	if gaugeCells > 24 {
		gaugeCells = 24
	}

	lines := []string{
		TitleStyle.Render("status"),
		"",
		fmt.Sprintf("width   %s", StatusAccentStyle.Render(fmt.Sprintf("%d", m.width))),
		fmt.Sprintf("bounds  %d to %d", m.cfg.MinWidth, m.cfg.MaxWidth),
		fmt.Sprintf("state   %s", m.controller.State()),
		fmt.Sprintf("moves   %d", m.resizeCount),
		"",
		RenderGauge(m.width, m.cfg.MinWidth, m.cfg.MaxWidth, gaugeCells),
	}
	if m.cfg.ID != "" {
		lines = append(lines, "", StatusStyle.Render("id "+m.cfg.ID))
	}

	return PanelStyle.
		Width(innerW).
		Height(height - paneChrome).
		Render(strings.Join(lines, "\n"))
}

// renderFooter draws the one-line key hint bar, truncated to fit.
func (m *Panel) renderFooter() string {
	hints := "drag sash to resize · double-click to reset · ? help · y copy width · q quit"
	if m.status != "" {
		hints = m.status + " · " + hints
	}
	if runewidth.StringWidth(hints) > m.termWidth {
		hints = runewidth.Truncate(hints, m.termWidth, "…")
	}
	return StatusStyle.Render(hints)
}

// aboutMarkdown is the demo document shown in the resizable pane; its
// word wrap follows the pane width, which makes drags easy to see.
const aboutMarkdown = `# sashpane

A split view whose divider (the **sash**) can be dragged with the
mouse to resize the left pane.

## Gestures

- Press the sash and drag left or right. The pane follows the pointer
  even after it leaves the divider column.
- The width stays inside the configured bounds no matter how far you
  drag.
- Double-click the sash to snap back to the configured default width.

## Live configuration

Edit the config file while the app is running; bounds and the default
width are picked up immediately, and the current width is re-clamped
if the new bounds require it.
`
