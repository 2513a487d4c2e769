package ports

import "go.trai.ch/coord/internal/core/domain"

// PinStore defines the interface for storing and retrieving pinned resolutions.
// A pin is keyed by the hash of the serialized request that produced it.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PinStore interface {
	// Get retrieves the pinned resolution for a request key.
	// Returns nil, nil if not found.
	Get(requestKey string) (*domain.Resolution, error)

	// Put stores the resolution under the given request key.
	Put(requestKey string, res *domain.Resolution) error
}
