// Package config provides the manifest loader for coord.
package config

import (
	"os"

	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/coord/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest looked up when no explicit path is given.
const DefaultFilename = "coord.yaml"

// Loader implements ports.ConfigLoader using a YAML manifest file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads a manifest file from the given path and returns the raw
// declaration set. Shapes are preserved: entries stay in string or structured
// form exactly as the author wrote them, normalization happens later in the
// request builder.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var coordfile Coordfile
	if err := yaml.Unmarshal(data, &coordfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	if coordfile.Version == "" {
		l.Logger.Warn("manifest has no version field, assuming \"1\"")
	}

	m := &domain.Manifest{
		FetchSources: coordfile.FetchSources,
		FetchJavadoc: coordfile.FetchJavadoc,
	}

	for _, dto := range coordfile.Artifacts {
		artifact, err := artifactInput(dto)
		if err != nil {
			return nil, err
		}
		m.Artifacts = append(m.Artifacts, artifact)
	}

	for _, dto := range coordfile.Repositories {
		repository, err := repositoryInput(dto)
		if err != nil {
			return nil, err
		}
		m.Repositories = append(m.Repositories, repository)
	}

	for _, dto := range coordfile.Exclusions {
		m.Exclusions = append(m.Exclusions, exclusionInput(dto))
	}

	return m, nil
}

func artifactInput(dto ArtifactDTO) (domain.RawArtifact, error) {
	if dto.scalar {
		return domain.ArtifactString(dto.Coordinate), nil
	}

	opts := make([]domain.ArtifactOption, 0)
	if dto.Packaging != nil {
		opts = append(opts, domain.WithPackaging(*dto.Packaging))
	}
	if dto.Classifier != nil {
		opts = append(opts, domain.WithClassifier(*dto.Classifier))
	}
	if dto.OverrideLicenseTypes != nil {
		opts = append(opts, domain.WithOverrideLicenseTypes(dto.OverrideLicenseTypes...))
	}
	if dto.Exclusions != nil {
		exclusions := make([]domain.RawExclusion, len(dto.Exclusions))
		for i, e := range dto.Exclusions {
			exclusions[i] = exclusionInput(e)
		}
		opts = append(opts, domain.WithExclusions(exclusions...))
	}
	if dto.Neverlink != nil {
		opts = append(opts, domain.WithNeverlink(*dto.Neverlink))
	}

	return domain.ArtifactSpec(
		domain.NewArtifact(dto.Group, dto.Artifact, dto.Version, opts...),
	), nil
}

func repositoryInput(dto RepositoryDTO) (domain.RawRepository, error) {
	if dto.scalar {
		return domain.RepositoryString(dto.RawURL), nil
	}

	opts := make([]domain.RepositoryOption, 0)
	if dto.User != nil {
		opts = append(opts, domain.WithUser(*dto.User))
	}
	if dto.Password != nil {
		opts = append(opts, domain.WithPassword(*dto.Password))
	}

	repository, err := domain.NewRepository(dto.URL, opts...)
	if err != nil {
		return domain.RawRepository{}, err
	}
	return domain.RepositorySpec(repository), nil
}

func exclusionInput(dto ExclusionDTO) domain.RawExclusion {
	if dto.scalar {
		return domain.ExclusionString(dto.Pair)
	}
	return domain.ExclusionSpec(domain.NewExclusion(dto.Group, dto.Artifact))
}
