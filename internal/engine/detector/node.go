package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

// NodeID is the unique identifier for the detector Graft node.
const NodeID graft.ID = "engine.detector"

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ScannerNodeID,
			manifest.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Detector, error) {
			scanner, err := graft.Dep[ports.ProjectScanner](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.DependencyExtractor](ctx)
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

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(scanner, extractor, tracer, log, *settings), nil
		},
	})
}
