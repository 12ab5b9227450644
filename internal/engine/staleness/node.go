package staleness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/git"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/core/ports"
)

// NodeID is the unique identifier for the staleness checker Graft node.
const NodeID graft.ID = "engine.staleness"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.HasherNodeID,
			git.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.StructuralHasher](ctx)
			if err != nil {
				return nil, err
			}

			history, err := graft.Dep[ports.History](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewChecker(store, hasher, history, tracer, log), nil
		},
	})
}
