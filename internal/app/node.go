package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plat/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"go.trai.ch/plat/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/plat/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/plat/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/plat/internal/core/ports"
	"go.trai.ch/plat/internal/engine/platform"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			platform.RegistryNodeID,
			catalog.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*platform.Registry](ctx)
	if err != nil {
		return nil, err
	}

	versions, err := graft.Dep[ports.VersionCatalog](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, registry, versions, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, provider.Shutdown), nil
}
