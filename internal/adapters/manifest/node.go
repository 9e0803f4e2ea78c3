package manifest

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest detectors Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[Detectors]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Detectors, error) {
			return DefaultDetectors(), nil
		},
	})
}
