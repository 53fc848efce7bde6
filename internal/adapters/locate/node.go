package locate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.errdex.dev/errdex/internal/adapters/config"
	"go.errdex.dev/errdex/internal/adapters/logger"
	"go.errdex.dev/errdex/internal/adapters/spotlight"
	"go.errdex.dev/errdex/internal/core/ports"
)

// NodeID is the unique identifier for the locate Graft node.
const NodeID graft.ID = "adapter.locate"

func init() {
	graft.Register(graft.Node[ports.HeaderLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			spotlight.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.HeaderLocator, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			searcher, err := graft.Dep[ports.FileSearcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLocator(cfg.KernReturnHeader, cfg.ErrnoHeader, searcher, log), nil
		},
	})
}
