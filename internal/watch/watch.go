// Package watch re-runs a callback whenever watched files change, for the
// advisor's -watch mode.
package watch

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a set of files and fires a callback after changes settle.
type Watcher struct {
	paths    []string
	settle   time.Duration
	onChange func()
	stop     chan struct{}
}

// New creates a watcher over the given paths. onChange runs on the watcher
// goroutine after writes have settled for the settle duration, so editors
// that write in multiple events trigger a single re-run.
func New(paths []string, settle time.Duration, onChange func()) *Watcher {
	if settle <= 0 {
		settle = 200 * time.Millisecond
	}
	return &Watcher{
		paths:    paths,
		settle:   settle,
		onChange: onChange,
		stop:     make(chan struct{}),
	}
}

// Run blocks, dispatching onChange for file writes, until Stop is called.
func (w *Watcher) Run() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	for _, path := range w.paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stop:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(w.settle)
				fire = pending.C
			} else {
				if !pending.Stop() {
					<-pending.C
				}
				pending.Reset(w.settle)
			}
		case <-fire:
			pending = nil
			fire = nil
			w.onChange()
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// Stop terminates Run.
func (w *Watcher) Stop() {
	close(w.stop)
}
