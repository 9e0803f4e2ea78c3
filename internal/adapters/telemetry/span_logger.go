package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/plat/internal/core/ports"
)

// SpanLogger implements sdktrace.SpanProcessor by writing every finished span to a logger.
type SpanLogger struct {
	logger ports.Logger
}

// NewSpanLogger creates a SpanLogger writing to logger.
func NewSpanLogger(logger ports.Logger) *SpanLogger {
	return &SpanLogger{logger: logger}
}

// OnStart is called when a span starts.
func (s *SpanLogger) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (s *SpanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	if s.logger == nil {
		return
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "span %s %s", span.Name(), span.EndTime().Sub(span.StartTime()).Round(time.Microsecond))
	for _, kv := range span.Attributes() {
		_, _ = fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
	}
	if status := span.Status(); status.Code == codes.Error {
		_, _ = fmt.Fprintf(&b, " error=%q", status.Description)
	}
	s.logger.Info(b.String())
}

// ForceFlush does nothing; spans are logged as they end.
func (s *SpanLogger) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (s *SpanLogger) Shutdown(_ context.Context) error {
	return nil
}
