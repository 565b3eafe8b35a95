package resize

import "sync"

// Kind classifies pointer events on the shared source.
type Kind int

const (
	KindMove    Kind = iota // pointer moved while a button is held
	KindRelease             // button released
)

// String returns display name for the event kind
func (k Kind) String() string {
	if k == KindRelease {
		return "release"
	}
	return "move"
}

// PointerEvent carries one pointer update in host coordinates.
type PointerEvent struct {
	Kind Kind
	X    int
	Y    int
}

// Handler receives pointer events. Implementations are registered by
// identity: Unsubscribe removes the exact value passed to Subscribe, so
// handlers should be pointer-typed structs, not fresh closures.
type Handler interface {
	HandlePointer(PointerEvent)
}

// Source is the minimal capability the controller needs from the host's
// pointer-event system. Tests use a fake; production hosts can use
// Dispatcher or adapt their own event loop.
type Source interface {
	Subscribe(Kind, Handler)
	Unsubscribe(Kind, Handler)
}

// Dispatcher is an in-process Source. Dispatch is synchronous and in
// subscription order. Registration is mutex-guarded so a host goroutine
// and a background publisher can share it, but handlers themselves run
// on the publishing goroutine.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[Kind][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Kind][]Handler),
	}
}

// Subscribe appends h to the handler list for kind. Subscribing the
// same handler twice delivers events twice; callers own the pairing.
func (d *Dispatcher) Subscribe(kind Kind, h Handler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Unsubscribe removes the first registration of h for kind, matched by
// identity. Removing a handler that was never subscribed is a no-op.
func (d *Dispatcher) Unsubscribe(kind Kind, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.handlers[kind]
	for i, cur := range list {
		if cur == h {
			d.handlers[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every handler subscribed for ev.Kind, in
// subscription order. The list is snapshotted first, so a handler may
// unsubscribe itself (or others) mid-dispatch without corrupting the
// iteration; such removals take effect for the next Publish.
func (d *Dispatcher) Publish(ev PointerEvent) {
	d.mu.Lock()
	list := d.handlers[ev.Kind]
	snapshot := make([]Handler, len(list))
	copy(snapshot, list)
	d.mu.Unlock()

	for _, h := range snapshot {
		h.HandlePointer(ev)
	}
}

// Len returns the number of live subscriptions for kind.
func (d *Dispatcher) Len(kind Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers[kind])
}
