package release

import (
	"context"

	"github.com/grindlemire/graft"
	"go.errdex.dev/errdex/internal/adapters/config"
	"go.errdex.dev/errdex/internal/adapters/logger"
	"go.errdex.dev/errdex/internal/core/ports"
)

// NodeID is the unique identifier for the release checker Graft node.
const NodeID graft.ID = "adapter.release_checker"

func init() {
	graft.Register(graft.Node[ports.ReleaseChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ReleaseChecker, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewChecker(cfg.ReleaseURL, cfg.CacheDir, log), nil
		},
	})
}
