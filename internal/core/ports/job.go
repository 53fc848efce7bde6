package ports

import "context"

// JobController spawns and observes named background jobs.
//
// The liveness probe and the spawn are not atomic together. Two rapid
// invocations can both miss the probe and spawn twice during job startup;
// this is tolerated because the refresh is idempotent and the last writer
// wins on the cache.
//
//go:generate mockgen -source=job.go -destination=mocks/mock_job.go -package=mocks
type JobController interface {
	// IsRunning reports whether a process registered under name is alive.
	// A stale or unreadable PID file reads as not running.
	IsRunning(name string) bool

	// Spawn starts the current executable detached with the given arguments,
	// output redirected to the job's log file. It returns once the process
	// has been started, without waiting for it to finish.
	Spawn(ctx context.Context, name string, args ...string) error

	// Register records the calling process as the live job under name.
	// The returned release func removes the registration and must be called
	// on exit.
	Register(name string) (release func(), err error)
}
