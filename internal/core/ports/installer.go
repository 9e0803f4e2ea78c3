package ports

import "context"

// InstallProbe reports what is already present on the build image.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type InstallProbe interface {
	// IsVersionInstalled reports whether version of platform is already installed.
	IsVersionInstalled(ctx context.Context, platform, version string) (bool, error)
}

// ScriptRenderer renders the shell snippet that installs a runtime version.
type ScriptRenderer interface {
	// RenderInstallScript returns the install snippet for version of platform.
	RenderInstallScript(ctx context.Context, platform, version string) (string, error)
}
