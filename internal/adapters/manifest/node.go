package manifest

import (
	"context"

	"github.com/grindlemire/graft"
)

// CacheNodeID is the unique identifier for the process-wide manifest cache Graft node.
const CacheNodeID graft.ID = "adapter.manifest_cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return NewCache(), nil
		},
	})
}
