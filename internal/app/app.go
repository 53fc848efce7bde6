// Package app implements the application layer for errdex.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"go.errdex.dev/errdex/internal/adapters/detector"
	"go.errdex.dev/errdex/internal/adapters/feedback"
	"go.errdex.dev/errdex/internal/adapters/text"
	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.errdex.dev/errdex/internal/engine/loader"
	"go.errdex.dev/errdex/internal/engine/rank"
)

// devVersion marks builds without injected release metadata. Such builds
// never surface release advisories.
const devVersion = "dev"

// Options carries the tunables the App reads from configuration.
type Options struct {
	CacheDir    string
	CacheMaxAge time.Duration
	Rerun       time.Duration
	Output      string
	Version     string
}

// App implements the query and refresh operations behind every command.
type App struct {
	loader   *loader.Loader
	store    ports.SnapshotStore
	jobs     ports.JobController
	releases ports.ReleaseChecker
	watcher  ports.DirWatcher
	log      ports.Logger
	opts     Options

	now    func() time.Time
	stdout io.Writer
}

// New creates a new App instance.
func New(
	load *loader.Loader,
	store ports.SnapshotStore,
	jobs ports.JobController,
	releases ports.ReleaseChecker,
	dirs ports.DirWatcher,
	log ports.Logger,
	opts Options,
) *App {
	return &App{
		loader:   load,
		store:    store,
		jobs:     jobs,
		releases: releases,
		watcher:  dirs,
		log:      log,
		opts:     opts,
		now:      time.Now,
		stdout:   os.Stdout,
	}
}

// WithClock overrides the time source.
// This is primarily used for testing freshness classification.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithOutput overrides the presenter target.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// QueryOptions configuration for the Query method.
type QueryOptions struct {
	OutputMode string
}

// Query serves one lookup from the cached snapshot and never blocks on a
// scan: a missing or stale snapshot triggers a detached background refresh
// while whatever is cached is served as it is.
func (a *App) Query(ctx context.Context, query string, opts QueryOptions) error {
	res := domain.QueryResult{Query: query}

	snap, err := a.store.Load()
	if err != nil {
		// A corrupt snapshot is served like a missing one; the refresh
		// spawned below overwrites it wholesale.
		if !errors.Is(err, domain.ErrCacheMiss) {
			a.log.Error(err)
		}
		res.State = domain.CacheMissing
	} else {
		res.State = snap.Info.StateAt(a.now(), a.opts.CacheMaxAge)
		res.Records = rank.Rank(snap.Records, query)
	}

	res.Updating = a.ensureFresh(ctx, res.State)
	if res.Updating {
		res.Rerun = a.opts.Rerun
	}

	res.Advisory = a.advisory()

	return a.presenter(opts.OutputMode).Present(res)
}

// Update runs one full refresh pass in the foreground.
func (a *App) Update(ctx context.Context) error {
	_, err := a.runPass(ctx)
	return err
}

// Watch runs a refresh pass, then re-runs it whenever a directory holding
// one of the loaded headers changes, until ctx is done.
func (a *App) Watch(ctx context.Context) error {
	records, err := a.runPass(ctx)
	if err != nil {
		return err
	}

	dirs := sourceDirs(records)
	if len(dirs) == 0 {
		a.log.Warn("no header directories to watch")
		return nil
	}

	return a.watcher.Watch(ctx, dirs, func() {
		if _, err := a.runPass(ctx); err != nil {
			a.log.Error(err)
		}
	})
}

// Status describes the snapshot for the maintenance commands.
type Status struct {
	CacheDir  string
	State     domain.CacheState
	WrittenAt time.Time
	Age       time.Duration
	Count     int
	Digest    string
	RunID     string
	Updating  bool
}

// Status reports the cache state without modifying it.
func (a *App) Status() (*Status, error) {
	st := &Status{
		CacheDir: a.opts.CacheDir,
		State:    domain.CacheMissing,
		Updating: a.jobs.IsRunning(domain.UpdateJobName),
	}

	info, err := a.store.Stat()
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return st, nil
		}
		return nil, err
	}

	st.State = info.StateAt(a.now(), a.opts.CacheMaxAge)
	st.WrittenAt = info.WrittenAt
	st.Age = a.now().Sub(info.WrittenAt)
	st.Count = info.Count
	st.Digest = info.Digest
	st.RunID = info.RunID

	return st, nil
}

// Clean removes the cached snapshot.
func (a *App) Clean() error {
	if err := a.store.Clear(); err != nil {
		return err
	}

	a.log.Info("snapshot removed", "dir", a.opts.CacheDir)
	return nil
}

// ensureFresh spawns the background refresh when the snapshot needs one,
// reporting whether a refresh is running afterwards.
func (a *App) ensureFresh(ctx context.Context, state domain.CacheState) bool {
	if a.jobs.IsRunning(domain.UpdateJobName) {
		return true
	}
	if state == domain.CacheFresh {
		return false
	}

	if err := a.jobs.Spawn(ctx, domain.UpdateJobName, "update"); err != nil {
		a.log.Error(err)
		return false
	}

	return true
}

// runPass refreshes once under the job registration, so concurrent queries
// observe the refresh through the liveness probe.
func (a *App) runPass(ctx context.Context) ([]domain.ErrorRecord, error) {
	release, err := a.jobs.Register(domain.UpdateJobName)
	if err != nil {
		return nil, err
	}
	defer release()

	return a.refresh(ctx)
}

// refresh reloads every header and overwrites the snapshot. The existing
// snapshot is left untouched when the load fails.
func (a *App) refresh(ctx context.Context) ([]domain.ErrorRecord, error) {
	runID := uuid.NewString()
	a.log.Info("refreshing error definitions", "run_id", runID)

	records, err := a.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	prev, statErr := a.store.Stat()

	info, err := a.store.Save(records, domain.SnapshotInfo{
		WrittenAt:   a.now().UTC(),
		RunID:       runID,
		ToolVersion: a.opts.Version,
	})
	if err != nil {
		return nil, err
	}

	a.log.Info("snapshot written",
		"records", info.Count,
		"digest", info.Digest,
		"changed", statErr != nil || prev.Digest != info.Digest,
		"run_id", runID,
	)

	a.checkRelease(ctx)

	return records, nil
}

// checkRelease refreshes the release cache. Failures never fail the pass.
func (a *App) checkRelease(ctx context.Context) {
	if err := a.releases.Refresh(ctx); err != nil {
		a.log.Warn("release check failed", "error", err.Error())
	}
}

// advisory returns the cached release when it is newer than this build.
func (a *App) advisory() *domain.Release {
	if a.opts.Version == "" || a.opts.Version == devVersion {
		return nil
	}

	rel, err := a.releases.Latest()
	if err != nil || !rel.NewerThan(a.opts.Version) {
		return nil
	}

	return rel
}

// presenter selects the output adapter for this invocation. An explicit
// flag wins over the configured mode; both fall back to detection.
func (a *App) presenter(override string) ports.Presenter {
	if override == "" {
		override = a.opts.Output
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), override)
	if mode == detector.ModeText {
		return text.NewPresenter(a.stdout)
	}

	return feedback.NewPresenter(a.stdout)
}

// sourceDirs collects the parent directories of the records' source files,
// keeping first-seen order.
func sourceDirs(records []domain.ErrorRecord) []string {
	seen := make(map[string]struct{})
	dirs := make([]string, 0, 4)

	for _, r := range records {
		dir := filepath.Dir(r.SourceFile)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	return dirs
}
