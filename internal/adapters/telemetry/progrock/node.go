package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/coord/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the tracer adapter node.
	NodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return New(), nil
		},
	})
}
