// Package manifest detects language platforms and their requested versions from project manifest files.
package manifest

import (
	"errors"
	"io/fs"
	"strings"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Detectors is the set of version detectors plat ships with.
type Detectors []ports.VersionDetector

// DefaultDetectors returns the built-in detectors.
func DefaultDetectors() Detectors {
	return Detectors{
		NewNodeJSDetector(),
		NewPythonDetector(),
		NewRubyDetector(),
	}
}

// repo reads manifest files from a source tree.
type repo struct {
	fsys fs.FS
}

// has reports whether name exists as a regular file.
func (r repo) has(name string) bool {
	info, err := fs.Stat(r.fsys, name)
	return err == nil && info.Mode().IsRegular()
}

// hasAny reports whether any of names exists as a regular file.
func (r repo) hasAny(names ...string) bool {
	for _, name := range names {
		if r.has(name) {
			return true
		}
	}
	return false
}

// read returns the contents of name. A missing file yields "" and ok=false without an error.
func (r repo) read(name string) (content string, ok bool, err error) {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "file", name)
	}
	return string(data), true, nil
}

// firstLine returns the first non-empty, non-comment line of the file, trimmed.
func (r repo) firstLine(name string) (string, error) {
	content, ok, err := r.read(name)
	if err != nil || !ok {
		return "", err
	}
	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	return "", nil
}

// versionFile returns the version pinned in a single-line version file such as .ruby-version,
// with prefix removed.
func (r repo) versionFile(name, prefix string) (string, error) {
	line, err := r.firstLine(name)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(line, prefix), nil
}

func parseError(err error, file string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "file", file)
}
