// Package ui hosts the resizable split-pane widget in a Bubble Tea
// program. It adapts terminal mouse events onto the resize controller:
// a press on the sash starts a drag, motion and release anywhere on the
// screen are forwarded through the shared pointer-event dispatcher so
// the drag keeps tracking after the pointer leaves the sash column.
package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidmaxon/sashpane/pkg/config"
	"github.com/davidmaxon/sashpane/pkg/resize"
)

// Double-click detection on the sash.
const (
	doubleClickWindow = 400 * time.Millisecond
	doubleClickSlop   = 1 // cells of pointer wobble tolerated between the two presses
)

// ConfigReloadedMsg carries a freshly loaded panel configuration into
// the model, typically pushed by the config file watcher.
type ConfigReloadedMsg struct {
	Cfg config.Panel
}

// Panel is the top-level Bubble Tea model: a left content pane, a
// one-cell draggable sash, and a right status pane.
type Panel struct {
	cfg          config.Panel
	width        int // current left-pane width in cells
	defaultWidth int // width restored on double-click reset

	dispatcher *resize.Dispatcher
	controller *resize.Controller

	termWidth  int
	termHeight int
	ready      bool

	vp          viewport.Model
	rawContent  string // markdown source for the left pane
	status      string // transient footer note
	showHelp    bool
	resizeCount int

	lastPress  time.Time
	lastPressX int
	lastPressY int
}

// NewPanel creates the widget for a resolved, validated configuration.
func NewPanel(cfg config.Panel) *Panel {
	p := &Panel{
		cfg:          cfg,
		width:        resize.Clamp(cfg.Width, cfg.MinWidth, cfg.MaxWidth),
		defaultWidth: cfg.Width,
		dispatcher:   resize.NewDispatcher(),
		rawContent:   aboutMarkdown,
		vp:           viewport.New(0, 0),
	}
	p.controller = resize.NewController(p.dispatcher, p.configSnapshot, p.applyWidth, p.applyReset)
	return p
}

// Width returns the current left-pane width.
func (m *Panel) Width() int {
	return m.width
}

// Dragging reports whether a sash drag is in progress.
func (m *Panel) Dragging() bool {
	return m.controller.Dragging()
}

// configSnapshot is the controller's per-query view of the current
// configuration. Width is the live width, not the configured one, so a
// drag anchors where the panel actually is.
func (m *Panel) configSnapshot() resize.Config {
	return resize.Config{
		Width:    m.width,
		MinWidth: m.cfg.MinWidth,
		MaxWidth: m.cfg.MaxWidth,
		ID:       m.cfg.ID,
	}
}

// applyWidth receives clamped widths from the controller during a drag.
func (m *Panel) applyWidth(w int) {
	if w == m.width {
		return
	}
	m.width = w
	m.resizeCount++
	m.refreshContent()
}

// applyReset restores the configured default width. The controller
// never computes defaults; that policy lives here.
func (m *Panel) applyReset() {
	m.width = resize.Clamp(m.defaultWidth, m.cfg.MinWidth, m.cfg.MaxWidth)
	m.status = "width reset"
	m.refreshContent()
}

// Init implements tea.Model.
func (m *Panel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.ready = true
		m.refreshContent()

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if m.showHelp {
			// Any key closes help, matching common TUI behavior.
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "y":
			if err := clipboard.WriteAll(strconv.Itoa(m.width)); err != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = fmt.Sprintf("copied width %d", m.width)
			}
		default:
			// Remaining keys scroll the content viewport.
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

	case ConfigReloadedMsg:
		m.cfg = msg.Cfg
		m.defaultWidth = msg.Cfg.Width
		m.width = resize.Clamp(m.width, msg.Cfg.MinWidth, msg.Cfg.MaxWidth)
		m.status = "config reloaded"
		m.refreshContent()
	}

	return m, nil
}

// handleMouse routes terminal mouse events. Press is handled directly
// (the sash is the only pressable surface); motion and release go
// through the dispatcher, which only delivers them while the controller
// holds live subscriptions, i.e. during a drag.
func (m *Panel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if !m.onSash(msg.X) {
			return
		}
		if m.controller.Dragging() {
			// A press with no intervening release (dropped event);
			// keep the existing session rather than leak a second
			// pair of subscriptions.
			return
		}
		if m.isDoubleClick(msg) {
			m.lastPress = time.Time{}
			m.controller.Reset()
			return
		}
		m.lastPress = time.Now()
		m.lastPressX = msg.X
		m.lastPressY = msg.Y
		m.controller.StartDrag(msg.X)

	case tea.MouseActionMotion:
		m.dispatcher.Publish(resize.PointerEvent{Kind: resize.KindMove, X: msg.X, Y: msg.Y})

	case tea.MouseActionRelease:
		m.dispatcher.Publish(resize.PointerEvent{Kind: resize.KindRelease, X: msg.X, Y: msg.Y})
	}
}

// onSash reports whether column x lands on the drag handle.
func (m *Panel) onSash(x int) bool {
	return x == m.sashColumn()
}

// isDoubleClick reports whether msg is the second press of a double
// activation: close enough in time and position to the previous press.
func (m *Panel) isDoubleClick(msg tea.MouseMsg) bool {
	if m.lastPress.IsZero() || time.Since(m.lastPress) > doubleClickWindow {
		return false
	}
	return abs(msg.X-m.lastPressX) <= doubleClickSlop && abs(msg.Y-m.lastPressY) <= doubleClickSlop
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
