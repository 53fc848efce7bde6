package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/grindlemire/graft"

	"go.errdex.dev/errdex/internal/adapters/config"
	"go.errdex.dev/errdex/internal/adapters/job"
	"go.errdex.dev/errdex/internal/adapters/logger"
	"go.errdex.dev/errdex/internal/adapters/release"
	"go.errdex.dev/errdex/internal/adapters/store"
	"go.errdex.dev/errdex/internal/adapters/watcher"
	"go.errdex.dev/errdex/internal/build"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.errdex.dev/errdex/internal/engine/loader"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			loader.NodeID,
			store.NodeID,
			job.NodeID,
			release.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			applyLogSettings(log, cfg)

			load, err := graft.Dep[*loader.Loader](ctx)
			if err != nil {
				return nil, err
			}
			snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			jobs, err := graft.Dep[ports.JobController](ctx)
			if err != nil {
				return nil, err
			}
			releases, err := graft.Dep[ports.ReleaseChecker](ctx)
			if err != nil {
				return nil, err
			}
			dirs, err := graft.Dep[ports.DirWatcher](ctx)
			if err != nil {
				return nil, err
			}

			a := New(load, snapshots, jobs, releases, dirs, log, Options{
				CacheDir:    cfg.CacheDir,
				CacheMaxAge: time.Duration(cfg.MaxAge),
				Rerun:       time.Duration(cfg.RerunInterval),
				Output:      cfg.Output,
				Version:     build.Version,
			})

			return &Components{App: a, Logger: log}, nil
		},
	})
}

// applyLogSettings pushes the configured level and format onto the logger.
// The logger node runs before config so the settings land after the fact.
func applyLogSettings(log ports.Logger, cfg *config.Config) {
	if l, ok := log.(interface{ SetLevel(slog.Level) }); ok {
		l.SetLevel(logLevel(cfg.LogLevel))
	}
	if l, ok := log.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(cfg.LogFormat == "json")
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
