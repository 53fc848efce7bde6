package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.errdex.dev/errdex/internal/app"
	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports/mocks"
	"go.errdex.dev/errdex/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

// captureLogger records warnings and errors emitted by the application.
type captureLogger struct {
	mu    sync.Mutex
	warns []string
	errs  []error
}

func (l *captureLogger) Debug(string, ...any) {}
func (l *captureLogger) Info(string, ...any)  {}

func (l *captureLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *captureLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

// harness wires an App against mocks, a fixed clock, and a capture buffer.
type harness struct {
	locator  *mocks.MockHeaderLocator
	store    *mocks.MockSnapshotStore
	jobs     *mocks.MockJobController
	releases *mocks.MockReleaseChecker
	watcher  *mocks.MockDirWatcher
	log      *captureLogger
	out      bytes.Buffer
	now      time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	return &harness{
		locator:  mocks.NewMockHeaderLocator(ctrl),
		store:    mocks.NewMockSnapshotStore(ctrl),
		jobs:     mocks.NewMockJobController(ctrl),
		releases: mocks.NewMockReleaseChecker(ctrl),
		watcher:  mocks.NewMockDirWatcher(ctrl),
		log:      &captureLogger{},
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (h *harness) build(opts app.Options) *app.App {
	if opts.CacheMaxAge == 0 {
		opts.CacheMaxAge = domain.FreshnessThreshold
	}
	if opts.Rerun == 0 {
		opts.Rerun = domain.DefaultRerunInterval
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	return app.New(loader.New(h.locator, h.log), h.store, h.jobs, h.releases, h.watcher, h.log, opts).
		WithClock(func() time.Time { return h.now }).
		WithOutput(&h.out)
}

func (h *harness) snapshot(age time.Duration, records ...domain.ErrorRecord) *domain.Snapshot {
	return &domain.Snapshot{
		Records: records,
		Info: domain.SnapshotInfo{
			WrittenAt: h.now.Add(-age),
			Count:     len(records),
			Digest:    "abc123",
			RunID:     "run-1",
		},
	}
}

func eacces() domain.ErrorRecord {
	return domain.ErrorRecord{
		Number:      "13",
		Name:        "EACCES",
		Description: "Permission denied",
		SourceFile:  "/usr/include/sys/errno.h",
		Domain:      domain.DomainPOSIX,
	}
}

func writeHeader(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestQuery_MissingCacheSpawnsRefresh(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(nil, domain.ErrCacheMiss)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
	h.jobs.EXPECT().Spawn(gomock.Any(), domain.UpdateJobName, "update").Return(nil)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), "Still loading error definitions")
	assert.Empty(t, h.log.errs)
}

func TestQuery_StaleServesAndSpawns(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(7*time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
	h.jobs.EXPECT().Spawn(gomock.Any(), domain.UpdateJobName, "update").Return(nil)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "cache stale, refresh running")
	assert.Contains(t, out, "EACCES")
}

func TestQuery_FreshNeverSpawns(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "cache fresh")
	assert.NotContains(t, out, "refresh running")
}

func TestQuery_RunningRefreshSuppressesSpawn(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(7*time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(true)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), "refresh running")
}

func TestQuery_FreshnessBoundary(t *testing.T) {
	cases := []struct {
		name   string
		age    time.Duration
		want   string
		spawns bool
	}{
		{name: "under threshold", age: domain.FreshnessThreshold - time.Second, want: "cache fresh", spawns: false},
		{name: "at threshold", age: domain.FreshnessThreshold, want: "cache fresh", spawns: false},
		{name: "over threshold", age: domain.FreshnessThreshold + time.Second, want: "cache stale", spawns: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.store.EXPECT().Load().Return(h.snapshot(tc.age, eacces()), nil)
			h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
			if tc.spawns {
				h.jobs.EXPECT().Spawn(gomock.Any(), domain.UpdateJobName, "update").Return(nil)
			}

			a := h.build(app.Options{})
			err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
			require.NoError(t, err)

			assert.Contains(t, h.out.String(), tc.want)
		})
	}
}

func TestQuery_CorruptSnapshotSelfHeals(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(nil, domain.ErrSnapshotDecodeFailed)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
	h.jobs.EXPECT().Spawn(gomock.Any(), domain.UpdateJobName, "update").Return(nil)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), "Still loading error definitions")
	require.Len(t, h.log.errs, 1)
	assert.ErrorIs(t, h.log.errs[0], domain.ErrSnapshotDecodeFailed)
}

func TestQuery_SpawnFailureLogsAndServes(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(7*time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
	h.jobs.EXPECT().Spawn(gomock.Any(), domain.UpdateJobName, "update").Return(domain.ErrJobSpawnFailed)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "cache stale")
	assert.NotContains(t, out, "refresh running")
	require.Len(t, h.log.errs, 1)
}

func TestQuery_UpdatingSetsRerun(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(nil, domain.ErrCacheMiss)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(true)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "feedback"})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), `"rerun": 0.5`)
}

func TestQuery_AdvisoryPrepended(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
	h.releases.EXPECT().Latest().Return(&domain.Release{
		Version: "v1.4.0",
		URL:     "https://example.com/releases/v1.4.0",
	}, nil)

	a := h.build(app.Options{Version: "v1.2.3"})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), "Update available: errdex v1.4.0")
}

func TestQuery_DevBuildSkipsAdvisory(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)

	a := h.build(app.Options{})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	assert.NotContains(t, h.out.String(), "Update available")
}

func TestQuery_AdvisorySuppressed(t *testing.T) {
	cases := []struct {
		name    string
		release *domain.Release
		err     error
	}{
		{name: "no cached release", release: nil, err: domain.ErrReleaseUnavailable},
		{name: "release not newer", release: &domain.Release{Version: "v1.0.0"}, err: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.store.EXPECT().Load().Return(h.snapshot(time.Hour, eacces()), nil)
			h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
			h.releases.EXPECT().Latest().Return(tc.release, tc.err)

			a := h.build(app.Options{Version: "v1.2.3"})
			err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
			require.NoError(t, err)

			assert.NotContains(t, h.out.String(), "Update available")
		})
	}
}

func TestQuery_OutputModeFromConfig(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)

	a := h.build(app.Options{Output: "feedback"})
	err := a.Query(context.Background(), "13", app.QueryOptions{})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), `"items"`)
}

func TestQuery_FlagOverridesConfiguredOutput(t *testing.T) {
	h := newHarness(t)
	h.store.EXPECT().Load().Return(h.snapshot(time.Hour, eacces()), nil)
	h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)

	a := h.build(app.Options{Output: "feedback"})
	err := a.Query(context.Background(), "13", app.QueryOptions{OutputMode: "text"})
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "cache fresh")
	assert.NotContains(t, out, `"items"`)
}

func TestUpdate_WritesSnapshot(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	path := writeHeader(t, dir, "errno.h", "#define EACCES 13 /* Permission denied */\n")

	released := false
	h.jobs.EXPECT().Register(domain.UpdateJobName).Return(func() { released = true }, nil)
	h.locator.EXPECT().Locate(gomock.Any()).Return([]domain.ErrorFile{
		{Path: path, Domain: domain.DomainPOSIX},
	}, nil)
	h.store.EXPECT().Stat().Return(nil, domain.ErrCacheMiss)
	h.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(records []domain.ErrorRecord, info domain.SnapshotInfo) (*domain.SnapshotInfo, error) {
			require.Len(t, records, 1)
			assert.Equal(t, "EACCES", records[0].Name)
			assert.Equal(t, "13", records[0].Number)
			assert.Equal(t, h.now, info.WrittenAt)
			assert.Equal(t, "dev", info.ToolVersion)
			assert.NotEmpty(t, info.RunID)

			info.Count = len(records)
			info.Digest = "digest-1"
			return &info, nil
		})
	h.releases.EXPECT().Refresh(gomock.Any()).Return(nil)

	a := h.build(app.Options{})
	require.NoError(t, a.Update(context.Background()))
	assert.True(t, released)
}

func TestUpdate_LocateFailureLeavesSnapshot(t *testing.T) {
	h := newHarness(t)
	h.jobs.EXPECT().Register(domain.UpdateJobName).Return(func() {}, nil)
	h.locator.EXPECT().Locate(gomock.Any()).Return(nil, domain.ErrSearchFailed)

	a := h.build(app.Options{})
	err := a.Update(context.Background())
	require.ErrorContains(t, err, domain.ErrSearchFailed.Error())
}

func TestUpdate_RegisterFailureAborts(t *testing.T) {
	h := newHarness(t)
	h.jobs.EXPECT().Register(domain.UpdateJobName).Return(nil, domain.ErrJobStateFailed)

	a := h.build(app.Options{})
	err := a.Update(context.Background())
	require.ErrorIs(t, err, domain.ErrJobStateFailed)
}

func TestUpdate_ReleaseFailureDoesNotFailPass(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	path := writeHeader(t, dir, "errno.h", "#define EPERM 1 /* Operation not permitted */\n")

	h.jobs.EXPECT().Register(domain.UpdateJobName).Return(func() {}, nil)
	h.locator.EXPECT().Locate(gomock.Any()).Return([]domain.ErrorFile{
		{Path: path, Domain: domain.DomainPOSIX},
	}, nil)
	h.store.EXPECT().Stat().Return(nil, domain.ErrCacheMiss)
	h.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(records []domain.ErrorRecord, info domain.SnapshotInfo) (*domain.SnapshotInfo, error) {
			info.Count = len(records)
			info.Digest = "digest-1"
			return &info, nil
		})
	h.releases.EXPECT().Refresh(gomock.Any()).Return(domain.ErrReleaseFetchFailed)

	a := h.build(app.Options{})
	require.NoError(t, a.Update(context.Background()))
	assert.Contains(t, h.log.warns, "release check failed")
}

func TestWatch_RefreshesOnChange(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	path := writeHeader(t, dir, "errno.h", "#define EACCES 13 /* Permission denied */\n")

	h.jobs.EXPECT().Register(domain.UpdateJobName).Return(func() {}, nil).Times(2)
	h.locator.EXPECT().Locate(gomock.Any()).Return([]domain.ErrorFile{
		{Path: path, Domain: domain.DomainPOSIX},
	}, nil).Times(2)
	h.store.EXPECT().Stat().Return(nil, domain.ErrCacheMiss).Times(2)
	h.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(records []domain.ErrorRecord, info domain.SnapshotInfo) (*domain.SnapshotInfo, error) {
			info.Count = len(records)
			info.Digest = "digest-1"
			return &info, nil
		}).Times(2)
	h.releases.EXPECT().Refresh(gomock.Any()).Return(nil).Times(2)
	h.watcher.EXPECT().Watch(gomock.Any(), []string{dir}, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []string, onChange func()) error {
			onChange()
			return nil
		})

	a := h.build(app.Options{})
	require.NoError(t, a.Watch(context.Background()))
	assert.Empty(t, h.log.errs)
}

func TestWatch_NothingToWatch(t *testing.T) {
	h := newHarness(t)
	h.jobs.EXPECT().Register(domain.UpdateJobName).Return(func() {}, nil)
	h.locator.EXPECT().Locate(gomock.Any()).Return([]domain.ErrorFile{}, nil)
	h.store.EXPECT().Stat().Return(nil, domain.ErrCacheMiss)
	h.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(records []domain.ErrorRecord, info domain.SnapshotInfo) (*domain.SnapshotInfo, error) {
			assert.Empty(t, records)
			info.Digest = "digest-empty"
			return &info, nil
		})
	h.releases.EXPECT().Refresh(gomock.Any()).Return(nil)

	a := h.build(app.Options{})
	require.NoError(t, a.Watch(context.Background()))
	assert.Contains(t, h.log.warns, "no header directories to watch")
}

func TestStatus(t *testing.T) {
	t.Run("missing cache", func(t *testing.T) {
		h := newHarness(t)
		h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
		h.store.EXPECT().Stat().Return(nil, domain.ErrCacheMiss)

		a := h.build(app.Options{CacheDir: "/tmp/errdex-cache"})
		st, err := a.Status()
		require.NoError(t, err)

		assert.Equal(t, "/tmp/errdex-cache", st.CacheDir)
		assert.Equal(t, domain.CacheMissing, st.State)
		assert.Zero(t, st.Count)
		assert.False(t, st.Updating)
	})

	t.Run("fresh cache with running refresh", func(t *testing.T) {
		h := newHarness(t)
		h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(true)
		h.store.EXPECT().Stat().Return(&domain.SnapshotInfo{
			WrittenAt: h.now.Add(-2 * time.Hour),
			Count:     42,
			Digest:    "abc123",
			RunID:     "run-1",
		}, nil)

		a := h.build(app.Options{CacheDir: "/tmp/errdex-cache"})
		st, err := a.Status()
		require.NoError(t, err)

		assert.Equal(t, domain.CacheFresh, st.State)
		assert.Equal(t, 2*time.Hour, st.Age)
		assert.Equal(t, 42, st.Count)
		assert.Equal(t, "abc123", st.Digest)
		assert.Equal(t, "run-1", st.RunID)
		assert.True(t, st.Updating)
	})

	t.Run("stat failure", func(t *testing.T) {
		h := newHarness(t)
		h.jobs.EXPECT().IsRunning(domain.UpdateJobName).Return(false)
		h.store.EXPECT().Stat().Return(nil, domain.ErrSnapshotReadFailed)

		a := h.build(app.Options{})
		_, err := a.Status()
		require.ErrorIs(t, err, domain.ErrSnapshotReadFailed)
	})
}

func TestClean(t *testing.T) {
	t.Run("removes snapshot", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().Clear().Return(nil)

		a := h.build(app.Options{CacheDir: "/tmp/errdex-cache"})
		require.NoError(t, a.Clean())
	})

	t.Run("clear failure", func(t *testing.T) {
		h := newHarness(t)
		h.store.EXPECT().Clear().Return(domain.ErrSnapshotWriteFailed)

		a := h.build(app.Options{})
		require.ErrorIs(t, a.Clean(), domain.ErrSnapshotWriteFailed)
	})
}
