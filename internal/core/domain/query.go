package domain

import (
	"strconv"
	"strings"
	"time"
)

// UpdateJobName is the job name the refresh runs under. The liveness probe
// and the PID file are both keyed by it.
const UpdateJobName = "update"

const (
	// MinRerunInterval is the smallest re-poll hint launchers accept.
	MinRerunInterval = 100 * time.Millisecond
	// MaxRerunInterval is the largest re-poll hint launchers accept.
	MaxRerunInterval = 5 * time.Second
	// DefaultRerunInterval is the re-poll hint used while a refresh is in flight.
	DefaultRerunInterval = 500 * time.Millisecond
)

// Release describes the newest known release of the tool itself, as cached
// by the most recent refresh.
type Release struct {
	Version   string    `json:"version"`
	URL       string    `json:"url,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// NewerThan reports whether the release version is strictly newer than
// current. Versions compare as dotted numeric components with an optional
// "v" prefix; pre-release suffixes are ignored and missing components
// count as zero.
func (r Release) NewerThan(current string) bool {
	latest := parseVersion(r.Version)
	installed := parseVersion(current)

	for i := range 3 {
		l, c := 0, 0
		if i < len(latest) {
			l = latest[i]
		}
		if i < len(installed) {
			c = installed[i]
		}

		if l != c {
			return l > c
		}
	}

	return false
}

func parseVersion(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")

	parts := strings.Split(v, ".")
	result := make([]int, 0, len(parts))

	for _, part := range parts {
		if idx := strings.IndexAny(part, "-+"); idx >= 0 {
			part = part[:idx]
		}

		num, err := strconv.Atoi(part)
		if err != nil {
			num = 0
		}
		result = append(result, num)
	}

	return result
}

// QueryResult is everything a presenter needs to render one query invocation.
// Records are already filtered and ranked. Rerun is zero unless the caller
// should re-invoke shortly to observe refresh progress.
type QueryResult struct {
	Query    string
	State    CacheState
	Updating bool
	Rerun    time.Duration
	Records  []ErrorRecord
	Advisory *Release
}
