package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plat/internal/adapters/config" //nolint:depguard // Settings come from the config adapter
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
)

// NodeID is the unique identifier for the version catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.VersionCatalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.VersionCatalog, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			c, err := Load(settings.CatalogFile)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}
