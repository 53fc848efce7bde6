package domain

import "time"

// FreshnessThreshold is the maximum snapshot age before a query triggers a
// background refresh. A stale snapshot is still served while the refresh runs.
const FreshnessThreshold = 6 * time.Hour

// CacheState classifies the snapshot relative to the freshness threshold
// at query time.
type CacheState int

const (
	// CacheMissing means no snapshot has ever been written.
	CacheMissing CacheState = iota
	// CacheStale means a snapshot exists but its age exceeds the threshold.
	CacheStale
	// CacheFresh means the snapshot is within the threshold.
	CacheFresh
)

// String returns the state name for logs.
func (s CacheState) String() string {
	switch s {
	case CacheMissing:
		return "missing"
	case CacheStale:
		return "stale"
	case CacheFresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// SnapshotInfo is the metadata persisted next to the record sequence.
type SnapshotInfo struct {
	WrittenAt   time.Time `json:"written_at"`
	Count       int       `json:"count"`
	Digest      string    `json:"digest"`
	RunID       string    `json:"run_id"`
	ToolVersion string    `json:"tool_version,omitempty"`
}

// StateAt classifies the snapshot at the given instant. A snapshot is stale
// only once its age strictly exceeds maxAge.
func (i SnapshotInfo) StateAt(now time.Time, maxAge time.Duration) CacheState {
	if now.Sub(i.WrittenAt) > maxAge {
		return CacheStale
	}
	return CacheFresh
}

// Snapshot is the cached error set: an ordered record sequence plus its
// metadata. It is created or overwritten wholesale by each successful load,
// never merged incrementally.
type Snapshot struct {
	Records []ErrorRecord
	Info    SnapshotInfo
}
