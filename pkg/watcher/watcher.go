package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single config file and invokes OnChange (debounced)
// whenever it is written or recreated. The parent directory is watched
// rather than the file itself, because most editors replace files on
// save and the inode-level watch would die with the old file.
type Watcher struct {
	path     string
	onChange func()
	onError  func(error)
	debounce *Debouncer
	fs       *fsnotify.Watcher
}

// New creates a watcher for path. onChange is required; onError may be
// nil, in which case watch errors are dropped.
func New(path string, window time.Duration, onChange func(), onError func(error)) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher requires an onChange callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fs watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		onError:  onError,
		debounce: NewDebouncer(window),
		fs:       fs,
	}, nil
}

// Run processes file events until ctx is cancelled or the event channel
// closes. It always returns nil on clean shutdown so errgroup peers are
// not torn down by a routine exit.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.debounce.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.matches(ev) {
				continue
			}
			w.debounce.Trigger(w.onChange)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// matches reports whether ev concerns the watched file and is a change
// worth reloading for. Renames count: atomic-save editors rename a temp
// file over the target.
func (w *Watcher) matches(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// Close releases the underlying fsnotify watcher. Run returns shortly
// after because the event channel closes.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
