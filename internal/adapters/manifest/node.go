package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/internal/adapters/logger"
	"go.trai.ch/intersense/internal/core/ports"
)

// NodeID is the unique identifier for the dependency extractor Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.DependencyExtractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyExtractor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
