package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrUnsupportedVersion is matched by every UnsupportedVersionError.
	ErrUnsupportedVersion = zerr.New("unsupported platform version")

	// ErrPlatformNotFound is returned when a platform name is not registered.
	ErrPlatformNotFound = zerr.New("platform not found")

	// ErrDuplicatePlatform is returned when two platforms register the same name.
	ErrDuplicatePlatform = zerr.New("platform already registered")

	// ErrPlatformNotDetected is returned when a snippet is requested for a platform the source tree does not use.
	ErrPlatformNotDetected = zerr.New("platform not detected in source directory")

	// ErrSourceDirInvalid is returned when the source directory does not exist or is not a directory.
	ErrSourceDirInvalid = zerr.New("source directory is not a directory")

	// ErrDetectionFailed is returned when a platform's detection fails for a reason other than validation.
	ErrDetectionFailed = zerr.New("platform detection failed")

	// ErrManifestReadFailed is returned when a manifest file exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when a manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrCatalogReadFailed is returned when the version catalog file cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read version catalog")

	// ErrCatalogParseFailed is returned when the version catalog file cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse version catalog")

	// ErrCatalogPlatformNotFound is returned when the catalog has no entry for a platform.
	ErrCatalogPlatformNotFound = zerr.New("platform missing from version catalog")

	// ErrCatalogEmptyPlatform is returned when a catalog entry lists no versions.
	ErrCatalogEmptyPlatform = zerr.New("version catalog entry has no versions")

	// ErrInstallProbeFailed is returned when the installed-runtime directories cannot be inspected.
	ErrInstallProbeFailed = zerr.New("failed to probe installed runtime")

	// ErrScriptRenderFailed is returned when an install snippet cannot be rendered.
	ErrScriptRenderFailed = zerr.New("failed to render install script")

	// ErrNoInstallTemplate is returned when no install template exists for a platform.
	ErrNoInstallTemplate = zerr.New("no install template for platform")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDynamicInstall is returned when the dynamic install environment variable is not a boolean.
	ErrInvalidDynamicInstall = zerr.New("invalid dynamic install value, expected a boolean")

	// ErrInvalidVersionOverride is returned when a version override is not in name=version form.
	ErrInvalidVersionOverride = zerr.New("invalid version override, expected format: platform=version")
)

// UnsupportedVersionError reports a resolved version that is not in the platform's supported set.
type UnsupportedVersionError struct {
	Platform  string
	Version   string
	Supported []string
}

// Error returns the operator-facing diagnostic naming the platform, the rejected version and every
// supported version.
func (e *UnsupportedVersionError) Error() string {
	return "Platform '" + e.Platform + "' version '" + e.Version + "' is unsupported. " +
		"Supported versions: " + strings.Join(e.Supported, ", ")
}

// Is lets errors.Is match the error against ErrUnsupportedVersion.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}
