package job

import (
	"context"

	"github.com/grindlemire/graft"
	"go.errdex.dev/errdex/internal/adapters/config"
	"go.errdex.dev/errdex/internal/adapters/logger"
	"go.errdex.dev/errdex/internal/core/ports"
)

// NodeID is the unique identifier for the job controller Graft node.
const NodeID graft.ID = "adapter.job_controller"

func init() {
	graft.Register(graft.Node[ports.JobController]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.JobController, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewController(cfg.CacheDir, log)
		},
	})
}
