package manifest

import (
	"context"
	"io/fs"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/plat/internal/core/domain"
)

const (
	requirementsTxt   = "requirements.txt"
	pyprojectToml     = "pyproject.toml"
	setupPy           = "setup.py"
	pipfile           = "Pipfile"
	runtimeTxt        = "runtime.txt"
	pythonVersionFile = ".python-version"
)

var pinnedPython = regexp.MustCompile(`^==\s*([0-9]+\.[0-9]+\.[0-9]+)$`)

type pyproject struct {
	Project struct {
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
}

type pipfileManifest struct {
	Requires struct {
		PythonFullVersion string `toml:"python_full_version"`
	} `toml:"requires"`
}

// PythonDetector finds Python projects by their dependency manifests.
type PythonDetector struct{}

// NewPythonDetector creates a new PythonDetector.
func NewPythonDetector() *PythonDetector {
	return &PythonDetector{}
}

// Platform returns "python".
func (d *PythonDetector) Platform() string {
	return domain.PlatformPython
}

// Detect proposes a version from, in order, runtime.txt, .python-version, Pipfile python_full_version and
// a pyproject.toml requires-python pinned with "==".
func (d *PythonDetector) Detect(_ context.Context, src fs.FS) (*domain.DetectorResult, error) {
	r := repo{fsys: src}
	if !r.hasAny(requirementsTxt, pyprojectToml, setupPy, pipfile, runtimeTxt) {
		return nil, nil
	}

	version, err := d.version(r)
	if err != nil {
		return nil, err
	}
	return &domain.DetectorResult{Platform: domain.PlatformPython, PlatformVersion: version}, nil
}

func (d *PythonDetector) version(r repo) (string, error) {
	if v, err := r.versionFile(runtimeTxt, "python-"); err != nil || v != "" {
		return v, err
	}
	if v, err := r.versionFile(pythonVersionFile, ""); err != nil || v != "" {
		return v, err
	}

	content, ok, err := r.read(pipfile)
	if err != nil {
		return "", err
	}
	if ok {
		var p pipfileManifest
		if err := toml.Unmarshal([]byte(content), &p); err != nil {
			return "", parseError(err, pipfile)
		}
		if v := strings.TrimSpace(p.Requires.PythonFullVersion); v != "" {
			return v, nil
		}
	}

	content, ok, err = r.read(pyprojectToml)
	if err != nil || !ok {
		return "", err
	}
	var p pyproject
	if err := toml.Unmarshal([]byte(content), &p); err != nil {
		return "", parseError(err, pyprojectToml)
	}
	if m := pinnedPython.FindStringSubmatch(strings.TrimSpace(p.Project.RequiresPython)); m != nil {
		return m[1], nil
	}
	return "", nil
}
