// Package watcher triggers refresh re-runs when watched header directories
// change on disk.
package watcher

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
)

var _ ports.DirWatcher = (*Watcher)(nil)

// Watcher implements ports.DirWatcher on fsnotify with a debounced callback.
type Watcher struct {
	log    ports.Logger
	window time.Duration
}

// NewWatcher creates a watcher coalescing event bursts over window.
func NewWatcher(window time.Duration, log ports.Logger) *Watcher {
	return &Watcher{log: log, window: window}
}

// Watch blocks until ctx is done, invoking onChange after each debounced
// burst of events under dirs. onChange runs on the watch goroutine, so
// bursts arriving during a callback coalesce into a single later invocation.
func (w *Watcher) Watch(ctx context.Context, dirs []string, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = fsw.Close() }()

	seen := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		if err := fsw.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", dir)
		}
	}

	w.log.Debug("watching header directories",
		"dirs", len(seen),
		"debounce", w.window.String(),
	)

	fired := make(chan []string, 1)
	deb := NewDebouncer(w.window, func(paths []string) {
		// Drop the burst if the previous one has not been consumed yet.
		select {
		case fired <- paths:
		default:
		}
	})
	defer deb.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if relevant(event.Op) {
				deb.Add(event.Name)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watch error", "error", err.Error())
		case paths := <-fired:
			w.log.Info("header change detected", "files", len(paths))
			onChange()
		}
	}
}

// relevant filters to operations that can change extraction results.
// Attribute-only changes never do.
func relevant(op fsnotify.Op) bool {
	return op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
