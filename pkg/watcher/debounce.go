// Package watcher reloads the panel configuration when its file changes
// on disk, with debouncing so editor save storms collapse into a single
// reload.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default debounce window for file events.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces bursts of Trigger calls: only the callback from
// the last call within the window runs, after the window elapses.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a Debouncer. A zero window selects
// DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the debounce window, replacing any
// previously scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		// The timer may have fired concurrently with a later Trigger or
		// a Cancel; the sequence check makes sure only the most recent
		// schedule actually runs.
		d.mu.Lock()
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Cancel drops any pending callback, including one whose timer already
// fired but has not yet run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
