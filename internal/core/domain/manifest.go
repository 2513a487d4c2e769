package domain

// Manifest is the raw user-facing declaration set, as loaded from coord.yaml.
// Its lists may mix compact strings and structured records; Build in the
// request engine normalizes them into a Request.
type Manifest struct {
	Artifacts    []RawArtifact
	Repositories []RawRepository

	// Exclusions are global: they apply to every artifact in the request.
	Exclusions []RawExclusion

	FetchSources bool
	FetchJavadoc bool
}

// Request is the canonical, fully normalized input handed to the resolver
// boundary. Records are immutable once constructed.
type Request struct {
	Artifacts    []Artifact
	Repositories []Repository
	Exclusions   []Exclusion

	FetchSources bool
	FetchJavadoc bool
}

// ResolvedArtifact is one entry of the resolver's report: a concrete artifact
// the resolver fetched, with the coordinates of its direct dependencies.
type ResolvedArtifact struct {
	Coordinate   string   `json:"coordinate"`
	File         string   `json:"file,omitempty"`
	Checksum     string   `json:"checksum,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// Resolution is the complete output of one resolver run.
type Resolution struct {
	Artifacts []ResolvedArtifact `json:"artifacts"`
}
