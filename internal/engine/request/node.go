package request

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the request builder Graft node.
const NodeID graft.ID = "engine.request_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Builder, error) {
			return NewBuilder(), nil
		},
	})
}
