// Package request builds canonical resolver requests from raw manifests.
package request

import (
	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/zerr"
)

// Builder normalizes a raw manifest into an immutable domain.Request.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build routes every mixed-shape list of the manifest through its normalizer
// and assembles the canonical request. Order and length of every list are
// preserved; nothing is filtered or deduplicated here, the resolver owns
// version mediation.
func (b *Builder) Build(m *domain.Manifest) (*domain.Request, error) {
	if len(m.Artifacts) == 0 {
		return nil, domain.ErrNoArtifactsDeclared
	}

	artifacts, err := domain.NormalizeArtifacts(m.Artifacts)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to normalize artifacts")
	}

	exclusions, err := domain.NormalizeExclusions(m.Exclusions)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to normalize global exclusions")
	}

	return &domain.Request{
		Artifacts:    artifacts,
		Repositories: domain.NormalizeRepositories(m.Repositories),
		Exclusions:   exclusions,
		FetchSources: m.FetchSources,
		FetchJavadoc: m.FetchJavadoc,
	}, nil
}
