package ports

import "go.trai.ch/plat/internal/core/domain"

// ConfigLoader defines the interface for loading per-request platform options.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the source tree at dir, applying environment overrides.
	// A missing configuration file is not an error.
	Load(dir string) (domain.Options, error)
}
