package ports

import "go.errdex.dev/errdex/internal/core/domain"

// SnapshotStore persists the cached error set.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the cached snapshot.
	// Returns domain.ErrCacheMiss when nothing has been cached yet.
	Load() (*domain.Snapshot, error)

	// Stat reads only the snapshot metadata.
	// Returns domain.ErrCacheMiss when nothing has been cached yet.
	Stat() (*domain.SnapshotInfo, error)

	// Save overwrites the snapshot wholesale. Count and Digest of the given
	// metadata are computed by the store; the completed metadata is returned.
	Save(records []domain.ErrorRecord, info domain.SnapshotInfo) (*domain.SnapshotInfo, error)

	// Clear removes the cached snapshot. Clearing an empty cache is not an error.
	Clear() error
}
