// Package resize implements the drag-to-resize interaction for a panel
// handle: it converts pointer movement into clamped widths and manages
// the lifetime of the global move/release subscriptions that keep a drag
// alive after the pointer leaves the handle.
package resize

// Config is a read-only snapshot of the panel's width configuration.
// It is owned by the caller and supplied fresh on every query; the
// controller never caches it beyond a single drag anchor.
//
// Callers must guarantee MinWidth <= MaxWidth. The clamp result is
// unspecified when that contract is broken.
type Config struct {
	Width    int    // current width in host units
	MinWidth int    // inclusive lower bound
	MaxWidth int    // inclusive upper bound
	ID       string // opaque passthrough, no behavioral effect
}

// Clamp bounds w to the closed interval [lo, hi].
func Clamp(w, lo, hi int) int {
	if w < lo {
		return lo
	}
	if w > hi {
		return hi
	}
	return w
}

// dragSession holds the fixed anchor for one drag. It exists only
// between StartDrag and StopDrag; every move is measured against it so
// rounding or dropped events can never accumulate into drift.
type dragSession struct {
	refX     int // pointer x at drag start
	refWidth int // clamped width at drag start
}

// State reports whether a drag session is in progress.
type State int

const (
	Idle State = iota
	Dragging
)

// String returns display name for the state
func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller translates raw pointer positions into clamped widths.
//
// It is a leaf component with two collaborators: a pointer-event Source
// for the global move/release subscriptions, and a config accessor that
// is consulted on every operation. Notifications go out through the
// OnWidth and OnReset callbacks; a nil callback is simply not invoked.
//
// All methods must be called from the host's event loop; the controller
// does no locking of its own.
type Controller struct {
	source  Source
	config  func() Config
	onWidth func(int)
	onReset func()

	session *dragSession
	move    *moveHandler
	stop    *stopHandler
}

// NewController creates a controller bound to the given event source and
// config accessor. Both must be non-nil; onWidth and onReset may be nil.
func NewController(source Source, config func() Config, onWidth func(int), onReset func()) *Controller {
	c := &Controller{
		source:  source,
		config:  config,
		onWidth: onWidth,
		onReset: onReset,
	}
	// Handler structs are built once so Subscribe and Unsubscribe see
	// the same identity for the controller's whole lifetime.
	c.move = &moveHandler{c: c}
	c.stop = &stopHandler{c: c}
	return c
}

// State returns Idle or Dragging.
func (c *Controller) State() State {
	if c.session != nil {
		return Dragging
	}
	return Idle
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// StartDrag begins a drag session anchored at pointer position x. The
// anchor width is the current configured width, clamped. A width of 0
// is a valid anchor like any other value.
//
// StartDrag subscribes the controller's move and release handlers on
// the event source. Calling it again without a matching StopDrag leaks
// a duplicate subscription; hosts must pair starts and stops.
func (c *Controller) StartDrag(x int) {
	cfg := c.config()
	c.session = &dragSession{
		refX:     x,
		refWidth: Clamp(cfg.Width, cfg.MinWidth, cfg.MaxWidth),
	}
	c.source.Subscribe(KindMove, c.move)
	c.source.Subscribe(KindRelease, c.stop)
}

// StopDrag ends the drag session and removes both global subscriptions.
// Safe to call when no session is active or when a subscription was
// never established; unsubscribing is unconditional.
func (c *Controller) StopDrag() {
	c.source.Unsubscribe(KindMove, c.move)
	c.source.Unsubscribe(KindRelease, c.stop)
	c.session = nil
}

// Reset emits the reset notification. It works in either state, does
// not touch an in-progress session, and computes no width: choosing the
// default is the host's job.
func (c *Controller) Reset() {
	if c.onReset != nil {
		c.onReset()
	}
}

// handleMove recomputes the width for pointer position x and emits it.
// Moves with no active session are ignored; in practice the move
// subscription only exists while dragging, this is belt and braces for
// sources that replay queued events after release.
func (c *Controller) handleMove(x int) {
	if c.session == nil {
		return
	}
	cfg := c.config()
	delta := x - c.session.refX
	width := Clamp(c.session.refWidth+delta, cfg.MinWidth, cfg.MaxWidth)
	if c.onWidth != nil {
		c.onWidth(width)
	}
}

// moveHandler forwards move events to the controller. A named struct
// rather than a closure so the Source can match it by identity on
// Unsubscribe.
type moveHandler struct {
	c *Controller
}

func (h *moveHandler) HandlePointer(ev PointerEvent) {
	h.c.handleMove(ev.X)
}

// stopHandler ends the drag on release.
type stopHandler struct {
	c *Controller
}

func (h *stopHandler) HandlePointer(ev PointerEvent) {
	h.c.StopDrag()
}
