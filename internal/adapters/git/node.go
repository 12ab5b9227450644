package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/internal/adapters/config"
	"go.trai.ch/intersense/internal/adapters/logger"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

// NodeID is the unique identifier for the VCS history Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.History]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.History, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHistory(settings.GitTimeout, log), nil
		},
	})
}
