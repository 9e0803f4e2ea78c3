// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io/fs"

	"go.trai.ch/plat/internal/core/domain"
)

// VersionDetector inspects a source tree for one platform.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type VersionDetector interface {
	// Platform returns the name of the platform the detector looks for.
	Platform() string

	// Detect looks for the platform's marker artifact in src.
	//
	// It returns nil, nil when the marker is absent. When the marker is present the result is non-nil and
	// PlatformVersion holds the proposed version, or "" if none could be determined.
	Detect(ctx context.Context, src fs.FS) (*domain.DetectorResult, error)
}
