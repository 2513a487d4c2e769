package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Coordfile represents the structure of the coord.yaml manifest.
type Coordfile struct {
	Version      string          `yaml:"version"`
	Artifacts    []ArtifactDTO   `yaml:"artifacts"`
	Repositories []RepositoryDTO `yaml:"repositories"`
	Exclusions   []ExclusionDTO  `yaml:"exclusions"`
	FetchSources bool            `yaml:"fetchSources"`
	FetchJavadoc bool            `yaml:"fetchJavadoc"`
}

// List elements for artifacts, repositories and exclusions accept two shapes:
// a plain scalar (the compact string form) or a mapping (the structured form).
// Each DTO keeps both and records which one the author used.

// ArtifactDTO is one artifact entry of the manifest.
type ArtifactDTO struct {
	Coordinate string
	scalar     bool

	Group                string         `yaml:"group"`
	Artifact             string         `yaml:"artifact"`
	Version              string         `yaml:"version"`
	Packaging            *string        `yaml:"packaging"`
	Classifier           *string        `yaml:"classifier"`
	OverrideLicenseTypes []string       `yaml:"overrideLicenseTypes"`
	Exclusions           []ExclusionDTO `yaml:"exclusions"`
	Neverlink            *bool          `yaml:"neverlink"`
}

// UnmarshalYAML accepts either a scalar coordinate string or a mapping.
func (d *ArtifactDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d.scalar = true
		return node.Decode(&d.Coordinate)
	case yaml.MappingNode:
		type plain ArtifactDTO
		return node.Decode((*plain)(d))
	default:
		return zerr.With(errInvalidListEntry("artifact"), "line", node.Line)
	}
}

// RepositoryDTO is one repository entry of the manifest.
type RepositoryDTO struct {
	RawURL string
	scalar bool

	URL      string  `yaml:"url"`
	User     *string `yaml:"user"`
	Password *string `yaml:"password"`
}

// UnmarshalYAML accepts either a scalar URL string or a mapping.
func (d *RepositoryDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d.scalar = true
		return node.Decode(&d.RawURL)
	case yaml.MappingNode:
		type plain RepositoryDTO
		return node.Decode((*plain)(d))
	default:
		return zerr.With(errInvalidListEntry("repository"), "line", node.Line)
	}
}

// ExclusionDTO is one exclusion entry, in the manifest's global list or
// inside an artifact entry.
type ExclusionDTO struct {
	Pair   string
	scalar bool

	Group    string `yaml:"group"`
	Artifact string `yaml:"artifact"`
}

// UnmarshalYAML accepts either a scalar group:artifact string or a mapping.
func (d *ExclusionDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d.scalar = true
		return node.Decode(&d.Pair)
	case yaml.MappingNode:
		type plain ExclusionDTO
		return node.Decode((*plain)(d))
	default:
		return zerr.With(errInvalidListEntry("exclusion"), "line", node.Line)
	}
}

func errInvalidListEntry(kind string) error {
	return zerr.New(kind + " entry must be a string or a mapping")
}
