// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/plat/internal/adapters/catalog"
	_ "go.trai.ch/plat/internal/adapters/config"
	_ "go.trai.ch/plat/internal/adapters/installer"
	_ "go.trai.ch/plat/internal/adapters/logger"
	_ "go.trai.ch/plat/internal/adapters/manifest"
	_ "go.trai.ch/plat/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/plat/internal/app"
	_ "go.trai.ch/plat/internal/engine/platform"
)
