package ports

import (
	"context"

	"go.trai.ch/plat/internal/core/domain"
)

// Platform is the capability set every language platform exposes to the build pipeline.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type Platform interface {
	// Name returns the platform name, e.g. "ruby".
	Name() string

	// Detect returns the platform and its effective version for the source tree, or nil when the
	// platform's marker artifact is absent. It fails with *domain.UnsupportedVersionError when the
	// effective version is not supported.
	Detect(ctx context.Context, bc *domain.BuildContext) (*domain.DetectionResult, error)

	// InstallerScriptSnippet decides whether the detected version must be installed and, if so,
	// returns the snippet that installs it.
	InstallerScriptSnippet(
		ctx context.Context,
		bc *domain.BuildContext,
		detection *domain.DetectionResult,
	) (domain.InstallDecision, error)
}
