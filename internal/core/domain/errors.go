package domain

import "go.trai.ch/zerr"

var (
	// ErrSearchFailed is returned when the file metadata search tool is missing or exits non-zero.
	ErrSearchFailed = zerr.New("file metadata search failed")

	// ErrCacheMiss is returned when no error snapshot has been cached yet.
	ErrCacheMiss = zerr.New("no error snapshot cached yet")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrSnapshotReadFailed is returned when the snapshot files cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read error snapshot")

	// ErrSnapshotDecodeFailed is returned when the snapshot files cannot be decoded.
	ErrSnapshotDecodeFailed = zerr.New("failed to decode error snapshot")

	// ErrSnapshotEncodeFailed is returned when the snapshot cannot be encoded.
	ErrSnapshotEncodeFailed = zerr.New("failed to encode error snapshot")

	// ErrSnapshotWriteFailed is returned when the snapshot files cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write error snapshot")

	// ErrHeaderReadFailed is returned when a located header file cannot be read.
	ErrHeaderReadFailed = zerr.New("failed to read header file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the merged configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrExecutableNotFound is returned when the current executable path cannot be determined.
	ErrExecutableNotFound = zerr.New("could not determine executable path")

	// ErrJobSpawnFailed is returned when the background refresh process cannot be started.
	ErrJobSpawnFailed = zerr.New("failed to spawn background refresh")

	// ErrJobStateFailed is returned when the job PID file cannot be written or removed.
	ErrJobStateFailed = zerr.New("failed to record job state")

	// ErrReleaseFetchFailed is returned when the latest-release endpoint cannot be reached.
	ErrReleaseFetchFailed = zerr.New("failed to fetch release information")

	// ErrReleaseDecodeFailed is returned when the release response or cache cannot be decoded.
	ErrReleaseDecodeFailed = zerr.New("failed to decode release information")

	// ErrReleaseWriteFailed is returned when the release cache cannot be written.
	ErrReleaseWriteFailed = zerr.New("failed to write release information")

	// ErrReleaseUnavailable is returned when no cached release information exists.
	ErrReleaseUnavailable = zerr.New("no release information cached")

	// ErrWatchFailed is returned when the header directories cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch header directories")

	// ErrRenderFailed is returned when results cannot be written to the output.
	ErrRenderFailed = zerr.New("failed to render results")

	// ErrInvalidOutputMode is returned when an unknown output mode is requested.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'feedback' or 'text'")
)
