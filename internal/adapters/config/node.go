package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/internal/adapters/logger"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the catalogue loader Graft node.
	NodeID graft.ID = "adapter.config"
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[ports.CatalogueLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CatalogueLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Settings, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
			}
			return LoadSettings(cwd)
		},
	})
}
