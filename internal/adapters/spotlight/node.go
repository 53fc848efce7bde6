package spotlight

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.errdex.dev/errdex/internal/adapters/config"
	"go.errdex.dev/errdex/internal/adapters/logger"
	"go.errdex.dev/errdex/internal/core/ports"
)

// NodeID is the unique identifier for the spotlight Graft node.
const NodeID graft.ID = "adapter.spotlight"

func init() {
	graft.Register(graft.Node[ports.FileSearcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.FileSearcher, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewSearcher(cfg.SearchTool, cfg.SearchRoot, time.Duration(cfg.SearchTimeout), log), nil
		},
	})
}
