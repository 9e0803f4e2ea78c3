package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/plat/internal/adapters/logger"
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the adapter settings Graft node.
	SettingsNodeID graft.ID = "adapter.config_settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Settings, error) {
			return LoadSettings(os.Getenv), nil
		},
	})
}
