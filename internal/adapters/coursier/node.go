package coursier

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/coord/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the coursier resolver Graft node.
const NodeID graft.ID = "adapter.coursier"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Resolver, error) {
			cacheDir, err := os.UserCacheDir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine user cache directory")
			}
			binary := os.Getenv("COORD_RESOLVER")
			return New(binary, filepath.Join(cacheDir, "coord", "resolutions.json")), nil
		},
	})
}
