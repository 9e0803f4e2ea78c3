package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the SDK tracer provider registered for the process.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates an SDK tracer provider reporting to processors and registers it as the global provider.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, sp := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(sp))
	}
	tp := sdktrace.NewTracerProvider(opts...)

	// Register it as the global provider.
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// Tracer returns a ports.Tracer creating spans on this provider.
func (p *Provider) Tracer(name string) *OTelTracer {
	return &OTelTracer{tracer: p.tp.Tracer(name)}
}

// Shutdown flushes and stops every span processor.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
