package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plat/internal/adapters/catalog"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plat/internal/adapters/installer" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plat/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plat/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plat/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plat/internal/core/ports"
)

// RegistryNodeID is the unique identifier for the platform registry Graft node.
const RegistryNodeID graft.ID = "engine.platform.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			catalog.NodeID,
			installer.ProbeNodeID,
			installer.RendererNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runRegistryNode,
	})
}

func runRegistryNode(ctx context.Context) (*Registry, error) {
	detectors, err := graft.Dep[manifest.Detectors](ctx)
	if err != nil {
		return nil, err
	}

	versions, err := graft.Dep[ports.VersionCatalog](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.InstallProbe](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.ScriptRenderer](ctx)
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

	registry := NewRegistry()
	for _, d := range detectors {
		p := New(d.Platform(), d, versions, probe, renderer, log, tracer)
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
