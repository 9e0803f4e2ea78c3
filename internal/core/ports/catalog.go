package ports

import (
	"context"

	"go.trai.ch/plat/internal/core/domain"
)

// VersionCatalog supplies the installable versions of each platform.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type VersionCatalog interface {
	// SupportedVersions returns the supported set and default version for platform.
	SupportedVersions(ctx context.Context, platform string) (domain.SupportedVersions, error)
}
