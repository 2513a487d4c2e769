package ports

import (
	"context"

	"go.trai.ch/coord/internal/core/domain"
)

// Resolver defines the boundary to the external dependency-resolution engine.
//
// Implementations are responsible for:
//   - Serializing the request into the engine's expected wire format
//   - Invoking the engine process and collecting its report
//   - Translating the report back into a domain.Resolution
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve runs the engine for the given request and returns its report.
	// The request is treated as immutable.
	Resolve(ctx context.Context, req *domain.Request) (*domain.Resolution, error)
}
