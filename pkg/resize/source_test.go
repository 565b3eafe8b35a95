package resize

import (
	"sync"
	"testing"
)

// orderedHandler appends its tag to a shared log on every event.
type orderedHandler struct {
	tag string
	log *[]string
}

func (h *orderedHandler) HandlePointer(ev PointerEvent) {
	*h.log = append(*h.log, h.tag)
}

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()
	var log []string
	a := &orderedHandler{tag: "a", log: &log}
	b := &orderedHandler{tag: "b", log: &log}
	c := &orderedHandler{tag: "c", log: &log}

	d.Subscribe(KindMove, a)
	d.Subscribe(KindMove, b)
	d.Subscribe(KindMove, c)

	d.Publish(PointerEvent{Kind: KindMove, X: 1})
	d.Publish(PointerEvent{Kind: KindMove, X: 2})

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d deliveries, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Delivery %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestDispatcherUnsubscribeByIdentity(t *testing.T) {
	d := NewDispatcher()
	var log []string
	a := &orderedHandler{tag: "a", log: &log}
	b := &orderedHandler{tag: "b", log: &log}

	d.Subscribe(KindMove, a)
	d.Subscribe(KindMove, b)
	d.Unsubscribe(KindMove, a)

	d.Publish(PointerEvent{Kind: KindMove})
	if len(log) != 1 || log[0] != "b" {
		t.Errorf("Expected only b delivered, got %v", log)
	}
	if d.Len(KindMove) != 1 {
		t.Errorf("Expected 1 live subscription, got %d", d.Len(KindMove))
	}
}

func TestDispatcherUnsubscribeUnknownHandler(t *testing.T) {
	d := NewDispatcher()
	var log []string
	a := &orderedHandler{tag: "a", log: &log}

	// Never subscribed: must be a no-op, not a panic.
	d.Unsubscribe(KindMove, a)
	d.Unsubscribe(KindRelease, a)
	if d.Len(KindMove) != 0 {
		t.Errorf("Expected 0 subscriptions, got %d", d.Len(KindMove))
	}
}

func TestDispatcherKindsIsolated(t *testing.T) {
	d := NewDispatcher()
	var log []string
	a := &orderedHandler{tag: "move", log: &log}

	d.Subscribe(KindMove, a)
	d.Publish(PointerEvent{Kind: KindRelease})
	if len(log) != 0 {
		t.Errorf("Expected no deliveries for release, got %v", log)
	}
}

// selfRemover unsubscribes itself on the first event it sees.
type selfRemover struct {
	d     *Dispatcher
	fired int
}

func (h *selfRemover) HandlePointer(ev PointerEvent) {
	h.fired++
	h.d.Unsubscribe(ev.Kind, h)
}

func TestDispatcherUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	h := &selfRemover{d: d}
	var log []string
	after := &orderedHandler{tag: "after", log: &log}

	d.Subscribe(KindRelease, h)
	d.Subscribe(KindRelease, after)

	d.Publish(PointerEvent{Kind: KindRelease})
	if h.fired != 1 {
		t.Fatalf("Expected self-remover to fire once, got %d", h.fired)
	}
	if len(log) != 1 {
		t.Fatalf("Expected later handler still delivered in same publish, got %v", log)
	}

	d.Publish(PointerEvent{Kind: KindRelease})
	if h.fired != 1 {
		t.Errorf("Expected no delivery after self-removal, got %d", h.fired)
	}
}

// countingHandler is safe for concurrent delivery.
type countingHandler struct {
	mu sync.Mutex
	n  int
}

func (h *countingHandler) HandlePointer(PointerEvent) {
	h.mu.Lock()
	h.n++
	h.mu.Unlock()
}

func TestDispatcherConcurrentRegistration(t *testing.T) {
	d := NewDispatcher()
	h := &countingHandler{}
	d.Subscribe(KindMove, h)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Publish(PointerEvent{Kind: KindMove, X: j})
			}
		}()
	}
	wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.n != 800 {
		t.Errorf("Expected 800 deliveries, got %d", h.n)
	}
}
