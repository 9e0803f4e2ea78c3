package manifest

import (
	"context"
	"encoding/json"
	"io/fs"
	"regexp"
	"strings"

	"go.trai.ch/plat/internal/core/domain"
)

const (
	packageJSON     = "package.json"
	nvmrc           = ".nvmrc"
	nodeVersionFile = ".node-version"
)

var exactNodeVersion = regexp.MustCompile(`^v?([0-9]+\.[0-9]+\.[0-9]+)$`)

// packageManifest keeps engines raw: older packages use an array or a string there.
type packageManifest struct {
	Engines json.RawMessage `json:"engines"`
}

// nodeConstraint returns engines.node when engines is an object and node a string, "" otherwise.
func (m packageManifest) nodeConstraint() string {
	var engines map[string]json.RawMessage
	if err := json.Unmarshal(m.Engines, &engines); err != nil {
		return ""
	}
	var node string
	if err := json.Unmarshal(engines["node"], &node); err != nil {
		return ""
	}
	return node
}

// NodeJSDetector finds Node.js projects by their package.json.
type NodeJSDetector struct{}

// NewNodeJSDetector creates a new NodeJSDetector.
func NewNodeJSDetector() *NodeJSDetector {
	return &NodeJSDetector{}
}

// Platform returns "nodejs".
func (d *NodeJSDetector) Platform() string {
	return domain.PlatformNodeJS
}

// Detect proposes the engines.node version when it names one exact version, then .nvmrc and .node-version.
// Ranges such as ">=18" are not expanded.
func (d *NodeJSDetector) Detect(_ context.Context, src fs.FS) (*domain.DetectorResult, error) {
	r := repo{fsys: src}
	content, ok, err := r.read(packageJSON)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var manifest packageManifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return nil, parseError(err, packageJSON)
	}

	version := exactVersion(manifest.nodeConstraint())
	for _, name := range []string{nvmrc, nodeVersionFile} {
		if version != "" {
			break
		}
		line, err := r.firstLine(name)
		if err != nil {
			return nil, err
		}
		version = strings.TrimPrefix(line, "v")
	}

	return &domain.DetectorResult{Platform: domain.PlatformNodeJS, PlatformVersion: version}, nil
}

func exactVersion(constraint string) string {
	m := exactNodeVersion.FindStringSubmatch(strings.TrimSpace(constraint))
	if m == nil {
		return ""
	}
	return m[1]
}
