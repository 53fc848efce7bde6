package ports

import (
	"context"

	"go.errdex.dev/errdex/internal/core/domain"
)

// ReleaseChecker tracks the newest published release of the tool itself.
//
// Refresh is only ever called from the background refresh job; the query
// path reads the cached result and performs no network I/O.
//
//go:generate mockgen -source=release.go -destination=mocks/mock_release.go -package=mocks
type ReleaseChecker interface {
	// Latest returns the cached release information.
	// Returns domain.ErrReleaseUnavailable when none has been cached.
	Latest() (*domain.Release, error)

	// Refresh fetches the latest release information and caches it.
	Refresh(ctx context.Context) error
}
