package ports

import "context"

// DirWatcher observes directories for header changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type DirWatcher interface {
	// Watch blocks watching the given directories until ctx is done,
	// invoking onChange after each debounced burst of events.
	Watch(ctx context.Context, dirs []string, onChange func()) error
}
