package manifest

import (
	"context"
	"io/fs"
	"regexp"
	"strings"

	"go.trai.ch/plat/internal/core/domain"
)

const (
	gemfile        = "Gemfile"
	gemfileLock    = "Gemfile.lock"
	rubyVersionDot = ".ruby-version"
)

var (
	gemfileRubyDirective = regexp.MustCompile(`(?m)^\s*ruby\s+['"]([0-9][0-9A-Za-z.\-]*)['"]`)
	lockRubyVersion      = regexp.MustCompile(`^ruby\s+([0-9]+(?:\.[0-9]+)*)`)
)

// RubyDetector finds Ruby projects by their Gemfile.
type RubyDetector struct{}

// NewRubyDetector creates a new RubyDetector.
func NewRubyDetector() *RubyDetector {
	return &RubyDetector{}
}

// Platform returns "ruby".
func (d *RubyDetector) Platform() string {
	return domain.PlatformRuby
}

// Detect proposes a version from, in order, the Gemfile ruby directive, the RUBY VERSION section of
// Gemfile.lock and .ruby-version.
func (d *RubyDetector) Detect(_ context.Context, src fs.FS) (*domain.DetectorResult, error) {
	r := repo{fsys: src}
	if !r.has(gemfile) {
		return nil, nil
	}

	version, err := d.version(r)
	if err != nil {
		return nil, err
	}
	return &domain.DetectorResult{Platform: domain.PlatformRuby, PlatformVersion: version}, nil
}

func (d *RubyDetector) version(r repo) (string, error) {
	content, _, err := r.read(gemfile)
	if err != nil {
		return "", err
	}
	if m := gemfileRubyDirective.FindStringSubmatch(content); m != nil {
		return m[1], nil
	}

	lock, _, err := r.read(gemfileLock)
	if err != nil {
		return "", err
	}
	if v := lockedRubyVersion(lock); v != "" {
		return v, nil
	}

	return r.versionFile(rubyVersionDot, "ruby-")
}

// lockedRubyVersion extracts "2.7.1" from a lockfile section such as
//
//	RUBY VERSION
//	   ruby 2.7.1p83
func lockedRubyVersion(lock string) string {
	inSection := false
	for line := range strings.Lines(lock) {
		trimmed := strings.TrimSpace(line)
		if !inSection {
			inSection = trimmed == "RUBY VERSION"
			continue
		}
		if trimmed == "" {
			return ""
		}
		if m := lockRubyVersion.FindStringSubmatch(trimmed); m != nil {
			return m[1]
		}
	}
	return ""
}
