package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.errdex.dev/errdex/internal/adapters/config"
	"go.errdex.dev/errdex/internal/adapters/logger"
	"go.errdex.dev/errdex/internal/core/ports"
)

// NodeID is the unique identifier for the directory watcher Graft node.
const NodeID graft.ID = "adapter.dir_watcher"

func init() {
	graft.Register(graft.Node[ports.DirWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DirWatcher, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewWatcher(time.Duration(cfg.WatchDebounce), log), nil
		},
	})
}
