package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcherDebounce is the delay after the last write event before a
// re-render. Editors and `gh api > file` write in bursts.
const watcherDebounce = 300 * time.Millisecond

// inputWatcher re-runs a render whenever the comments file changes.
//
// The parent directory is watched rather than the file so that editors
// which save by rename keep triggering events. Timer callbacks only send
// signals; the rebuild always runs on the run goroutine.
type inputWatcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	signals  chan struct{} // debounced rebuild trigger; capacity 1

	// Guards timer so run's exit can cancel it safely.
	mu    sync.Mutex
	timer *time.Timer
}

func newInputWatcher(path string, logger *slog.Logger) *inputWatcher {
	return &inputWatcher{
		path:     filepath.Clean(path),
		debounce: watcherDebounce,
		logger:   logger,
		signals:  make(chan struct{}, 1),
	}
}

// sendSignal does a non-blocking send on the signals channel.
// A pending signal already covers this change.
func (w *inputWatcher) sendSignal() {
	select {
	case w.signals <- struct{}{}:
	default:
	}
}

// schedule restarts the debounce timer.
func (w *inputWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.sendSignal)
}

func (w *inputWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// run blocks until ctx is done, calling rebuild once per burst of changes
// to the watched file. Returns ctx.Err() on cancellation.
func (w *inputWatcher) run(ctx context.Context, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	defer w.stopTimer()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.logger.Info("watching for changes", "file", w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-w.signals:
			w.logger.Debug("input changed, re-rendering", "file", w.path)
			rebuild()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)
		}
	}
}
