package project

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the write/rename bursts editors produce when
// saving a file into a single reload.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a storyboard file when it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	fn       func(*Project, error)

	fw       *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides the reload debounce window.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WatchFile watches path and invokes fn with the reloaded project (or
// the load error) after each settled change. The parent directory is
// watched rather than the file itself so atomic save-and-rename
// editors keep triggering events.
func WatchFile(path string, fn func(*Project, error), opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("project: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("project: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		fn:       fn,
		fw:       fw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop()
	return w, nil
}

// Stop releases the watcher. Changes still inside the debounce window
// are dropped, not delivered. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fw.Close()
	})
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			select {
			case <-w.done:
				return
			default:
			}
			w.fn(Load(w.path))

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Transient watch errors are ignored; the next event
			// still triggers a reload.
		}
	}
}
