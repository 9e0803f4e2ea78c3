package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plat/internal/adapters/config" //nolint:depguard // Settings come from the config adapter
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
)

const (
	// ProbeNodeID is the unique identifier for the install probe Graft node.
	ProbeNodeID graft.ID = "adapter.installer.probe"
	// RendererNodeID is the unique identifier for the script renderer Graft node.
	RendererNodeID graft.ID = "adapter.installer.renderer"
)

func init() {
	graft.Register(graft.Node[ports.InstallProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.InstallProbe, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(settings), nil
		},
	})

	graft.Register(graft.Node[ports.ScriptRenderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ScriptRenderer, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := NewRenderer(settings)
			if err != nil {
				return nil, err
			}
			return renderer, nil
		},
	})
}
