package domain

// Exclusion is a group/artifact pair that must be omitted from transitive
// resolution, either for a single owning artifact or globally for the whole
// request.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// NewExclusion creates an Exclusion from fully specified fields.
func NewExclusion(groupID, artifactID string) Exclusion {
	return Exclusion{
		GroupID:    groupID,
		ArtifactID: artifactID,
	}
}
