// Package domain defines the canonical specification records for Maven
// artifacts, repositories and exclusions, together with the grammar parsers
// that normalize compact coordinate strings into them.
package domain

import "strings"

// Artifact is the canonical record for a single Maven artifact declaration.
//
// GroupID, ArtifactID and Version are always present. Every other field is
// present-or-absent: a nil pointer or nil slice means the field was never
// supplied, which is a different statement than an empty value. The request
// serializer emits a field only when it is present.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Version    string

	// Packaging is the artifact packaging, e.g. "jar" or "aar".
	Packaging *string

	// Classifier distinguishes secondary artifacts, e.g. "sources".
	Classifier *string

	// OverrideLicenseTypes replaces the license types detected by the resolver.
	// Order is preserved as supplied.
	OverrideLicenseTypes []string

	// Exclusions lists transitive dependencies that must not be resolved for
	// this artifact. Elements may still be in compact string form; the
	// request serializer normalizes them before encoding.
	Exclusions []RawExclusion

	// Neverlink marks the artifact as compile-only.
	Neverlink *bool
}

// ArtifactOption configures an optional field on a new Artifact.
type ArtifactOption func(*Artifact)

// WithPackaging sets the packaging field.
func WithPackaging(packaging string) ArtifactOption {
	return func(a *Artifact) {
		a.Packaging = &packaging
	}
}

// WithClassifier sets the classifier field.
func WithClassifier(classifier string) ArtifactOption {
	return func(a *Artifact) {
		a.Classifier = &classifier
	}
}

// WithOverrideLicenseTypes sets the license type override list.
func WithOverrideLicenseTypes(types ...string) ArtifactOption {
	return func(a *Artifact) {
		a.OverrideLicenseTypes = types
	}
}

// WithExclusions sets the per-artifact exclusion list. Inputs may mix
// compact strings and structured records.
func WithExclusions(exclusions ...RawExclusion) ArtifactOption {
	return func(a *Artifact) {
		a.Exclusions = exclusions
	}
}

// WithNeverlink sets the neverlink flag.
func WithNeverlink(neverlink bool) ArtifactOption {
	return func(a *Artifact) {
		a.Neverlink = &neverlink
	}
}

// NewArtifact creates an Artifact from fully specified fields. Optional fields
// are attached only when an option supplies them.
func NewArtifact(groupID, artifactID, version string, opts ...ArtifactOption) Artifact {
	a := Artifact{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Coordinate derives the resolver CLI argument form of the artifact:
// group:artifact:version, with ",classifier=<classifier>" appended when a
// classifier is present. Packaging and exclusions are not part of this form;
// the resolver CLI only accepts group/artifact/version/classifier.
func (a Artifact) Coordinate() string {
	var b strings.Builder
	b.WriteString(a.GroupID)
	b.WriteString(":")
	b.WriteString(a.ArtifactID)
	b.WriteString(":")
	b.WriteString(a.Version)
	if a.Classifier != nil {
		b.WriteString(",classifier=")
		b.WriteString(*a.Classifier)
	}
	return b.String()
}
