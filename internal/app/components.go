package app

import (
	"context"

	"go.trai.ch/plat/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger

	shutdown func(context.Context) error
}

// NewComponents creates a new Components struct from dependencies.
// shutdown, when non-nil, releases process-wide resources such as the tracer provider.
func NewComponents(app *App, logger ports.Logger, shutdown func(context.Context) error) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		shutdown: shutdown,
	}
}

// Close flushes and releases what the components hold.
func (c *Components) Close(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}
	return c.shutdown(ctx)
}
