package domain

import (
	"io/fs"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Platform names known to the built-in detectors.
const (
	PlatformRuby   = "ruby"
	PlatformNodeJS = "nodejs"
	PlatformPython = "python"
)

// VersionSource records which input a resolved version came from.
type VersionSource string

const (
	// SourceExplicit is a version configured by the operator for the platform.
	SourceExplicit VersionSource = "explicit"
	// SourceDetected is a version proposed by the platform detector.
	SourceDetected VersionSource = "detected"
	// SourceDefault is the catalog default for the platform.
	SourceDefault VersionSource = "default"
)

// Options is the per-request platform configuration. It is built once per request and never mutated.
type Options struct {
	// DynamicInstall permits emitting install snippets for runtimes missing from the build image.
	DynamicInstall bool
	// Versions maps a platform name to an explicitly configured version.
	Versions map[string]string
}

// NewOptions returns Options holding a private copy of versions.
func NewOptions(dynamicInstall bool, versions map[string]string) Options {
	return Options{
		DynamicInstall: dynamicInstall,
		Versions:       maps.Clone(versions),
	}
}

// Version returns the explicit version configured for platform, or "" when none is set.
func (o Options) Version(platform string) string {
	return o.Versions[platform]
}

// ParseVersionOverrides parses "platform=version" pairs. A later pair for the same platform wins.
func ParseVersionOverrides(pairs []string) (map[string]string, error) {
	versions := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, version, ok := strings.Cut(pair, "=")
		name, version = strings.TrimSpace(name), strings.TrimSpace(version)
		if !ok || name == "" || version == "" {
			return nil, zerr.With(ErrInvalidVersionOverride, "value", pair)
		}
		versions[name] = version
	}
	return versions, nil
}

// BuildContext carries everything a platform needs to inspect one source tree.
type BuildContext struct {
	// SourceDir is the absolute path of the source tree, used for messages.
	SourceDir string
	// Source is the source tree rooted at SourceDir.
	Source fs.FS
	// Options is the request configuration.
	Options Options
}

// DetectorResult is what a detector reports for a source tree whose marker artifact it found.
// An empty PlatformVersion means the marker is present but no version could be determined.
type DetectorResult struct {
	Platform        string
	PlatformVersion string
}

// SupportedVersions is the catalog entry for a platform.
type SupportedVersions struct {
	// Versions lists every installable version in catalog order.
	Versions []string
	// Default is used when neither an explicit nor a detected version is available.
	Default string
}

// Contains reports whether version is a member of the supported set.
func (s SupportedVersions) Contains(version string) bool {
	return slices.Contains(s.Versions, version)
}

// DetectionResult is the outcome of detecting a platform in a source tree.
type DetectionResult struct {
	Platform        string        `json:"platform"`
	PlatformVersion string        `json:"platformVersion"`
	Source          VersionSource `json:"source"`
}

// InstallDecision says whether a runtime must be installed before the build.
// Snippet is non-empty if and only if ShouldInstall is true.
type InstallDecision struct {
	ShouldInstall bool   `json:"shouldInstall"`
	Snippet       string `json:"snippet,omitempty"`
}

// PlatformPlan pairs a detection with its install decision.
type PlatformPlan struct {
	Detection DetectionResult `json:"detection"`
	Install   InstallDecision `json:"install"`
}
