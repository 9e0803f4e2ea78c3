package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/plat/internal/adapters/config" //nolint:depguard // Settings come from the config adapter
	"go.trai.ch/plat/internal/adapters/logger" //nolint:depguard // Span logging goes through the logger
	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
)

const (
	// ProviderNodeID is the unique identifier for the tracer provider Graft node.
	ProviderNodeID graft.ID = "adapter.telemetry.provider"
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			var processors []sdktrace.SpanProcessor
			if settings.TraceSpans {
				processors = append(processors, NewSpanLogger(log))
			}
			return NewProvider(processors...), nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProviderNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			provider, err := graft.Dep[*Provider](ctx)
			if err != nil {
				return nil, err
			}
			return provider.Tracer(InstrumentationName), nil
		},
	})
}
