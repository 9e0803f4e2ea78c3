package domain

import (
	"go.trai.ch/zerr"
)

// VersionCandidate is one input to version resolution.
type VersionCandidate struct {
	Source  VersionSource
	Version string
}

// ResolvedVersion is the version picked by resolution and where it came from.
// It is well formed but not yet known to be supported.
type ResolvedVersion struct {
	Version string
	Source  VersionSource
}

// FirstPresent returns the first candidate with a non-empty version.
func FirstPresent(candidates ...VersionCandidate) (VersionCandidate, bool) {
	for _, c := range candidates {
		if c.Version != "" {
			return c, true
		}
	}
	return VersionCandidate{}, false
}

// ResolveVersion picks the effective version: explicit over detected over default.
func ResolveVersion(explicit, detected, defaultVersion string) ResolvedVersion {
	c, _ := FirstPresent(
		VersionCandidate{Source: SourceExplicit, Version: explicit},
		VersionCandidate{Source: SourceDetected, Version: detected},
		VersionCandidate{Source: SourceDefault, Version: defaultVersion},
	)
	return ResolvedVersion{Version: c.Version, Source: c.Source}
}

// ValidateVersion returns version unchanged when it is supported and an *UnsupportedVersionError otherwise.
// The rule does not depend on where the version came from.
func ValidateVersion(platform, version string, supported SupportedVersions) (string, error) {
	if supported.Contains(version) {
		return version, nil
	}
	return "", &UnsupportedVersionError{
		Platform:  platform,
		Version:   version,
		Supported: append([]string(nil), supported.Versions...),
	}
}

// DecideInstall decides whether version must be installed.
// installed is not called when dynamic install is disabled and render is not called when the version
// is already installed. An empty rendered snippet fails with ErrScriptRenderFailed, so Snippet is
// non-empty exactly when ShouldInstall is true.
func DecideInstall(
	version string,
	dynamicInstall bool,
	installed func(version string) (bool, error),
	render func(version string) (string, error),
) (InstallDecision, error) {
	if !dynamicInstall {
		return InstallDecision{}, nil
	}

	ok, err := installed(version)
	if err != nil {
		return InstallDecision{}, zerr.With(zerr.Wrap(err, ErrInstallProbeFailed.Error()), "version", version)
	}
	if ok {
		return InstallDecision{}, nil
	}

	script, err := render(version)
	if err != nil {
		return InstallDecision{}, zerr.With(zerr.Wrap(err, ErrScriptRenderFailed.Error()), "version", version)
	}
	if script == "" {
		return InstallDecision{}, zerr.With(ErrScriptRenderFailed, "version", version)
	}

	return InstallDecision{ShouldInstall: true, Snippet: script}, nil
}
