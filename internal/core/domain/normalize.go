package domain

// Manifest authors may declare artifacts, repositories and exclusions either
// as compact strings or as fully structured records, freely mixed within one
// list. The Raw* types model that union explicitly: each value holds exactly
// one of the two forms. The Normalize* functions collapse mixed lists into
// uniform canonical records, preserving order and length.

// RawArtifact is a single artifact input, either a compact coordinate string
// or an already structured Artifact.
type RawArtifact struct {
	coordinate string
	spec       *Artifact
}

// ArtifactString wraps a compact coordinate string as an artifact input.
func ArtifactString(coordinate string) RawArtifact {
	return RawArtifact{coordinate: coordinate}
}

// ArtifactSpec wraps a structured Artifact as an artifact input.
func ArtifactSpec(a Artifact) RawArtifact {
	return RawArtifact{spec: &a}
}

// RawRepository is a single repository input, either a bare URL string or an
// already structured Repository.
type RawRepository struct {
	url  string
	spec *Repository
}

// RepositoryString wraps a bare URL string as a repository input.
func RepositoryString(url string) RawRepository {
	return RawRepository{url: url}
}

// RepositorySpec wraps a structured Repository as a repository input.
func RepositorySpec(r Repository) RawRepository {
	return RawRepository{spec: &r}
}

// RawExclusion is a single exclusion input, either a compact group:artifact
// string or an already structured Exclusion.
type RawExclusion struct {
	pair string
	spec *Exclusion
}

// ExclusionString wraps a compact group:artifact string as an exclusion input.
func ExclusionString(pair string) RawExclusion {
	return RawExclusion{pair: pair}
}

// ExclusionSpec wraps a structured Exclusion as an exclusion input.
func ExclusionSpec(e Exclusion) RawExclusion {
	return RawExclusion{spec: &e}
}

// NormalizeArtifacts converts a mixed artifact list into canonical Artifact
// records. String elements are routed through ParseCoordinate; structured
// elements pass through unchanged.
func NormalizeArtifacts(inputs []RawArtifact) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(inputs))
	for _, in := range inputs {
		if in.spec != nil {
			artifacts = append(artifacts, *in.spec)
			continue
		}
		a, err := ParseCoordinate(in.coordinate)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// NormalizeRepositories converts a mixed repository list into canonical
// Repository records. String elements are wrapped as a credential-less
// repository; structured elements pass through unchanged.
func NormalizeRepositories(inputs []RawRepository) []Repository {
	repositories := make([]Repository, 0, len(inputs))
	for _, in := range inputs {
		if in.spec != nil {
			repositories = append(repositories, *in.spec)
			continue
		}
		repositories = append(repositories, Repository{URL: in.url})
	}
	return repositories
}

// NormalizeExclusions converts a mixed exclusion list into canonical
// Exclusion records. String elements are routed through ParseExclusion;
// structured elements pass through unchanged.
func NormalizeExclusions(inputs []RawExclusion) ([]Exclusion, error) {
	exclusions := make([]Exclusion, 0, len(inputs))
	for _, in := range inputs {
		if in.spec != nil {
			exclusions = append(exclusions, *in.spec)
			continue
		}
		e, err := ParseExclusion(in.pair)
		if err != nil {
			return nil, err
		}
		exclusions = append(exclusions, e)
	}
	return exclusions, nil
}
