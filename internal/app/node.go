package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/intersense/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/intersense/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/intersense/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/intersense/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/intersense/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/intersense/internal/engine/detector"
	"go.trai.ch/intersense/internal/engine/staleness"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			cache.NodeID,
			fs.HasherNodeID,
			detector.NodeID,
			staleness.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.CatalogueLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.StructuralHasher](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[*detector.Detector](ctx)
	if err != nil {
		return nil, err
	}

	checker, err := graft.Dep[*staleness.Checker](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, store, hasher, det, checker, w, log, tracer, *settings), nil
}
