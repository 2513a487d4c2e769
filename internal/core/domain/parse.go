package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Segment counts accepted by the coordinate grammar. The grammar is
// positional: packaging and classifier occupy fixed slots before the version,
// so a 4-segment coordinate is always group:artifact:packaging:version,
// never group:artifact:classifier:version.
const (
	coordinateSegmentsPlain      = 3
	coordinateSegmentsPackaging  = 4
	coordinateSegmentsClassifier = 5

	exclusionSegments = 2
)

// ParseCoordinate parses a compact coordinate string into an Artifact.
//
// Accepted forms:
//
//	group:artifact:version
//	group:artifact:packaging:version
//	group:artifact:packaging:classifier:version
//
// Any other segment count returns ErrMalformedCoordinate carrying the
// offending string. Segment content is not validated; an empty segment
// becomes an empty-string field.
func ParseCoordinate(coordinate string) (Artifact, error) {
	segments := strings.Split(coordinate, ":")

	switch len(segments) {
	case coordinateSegmentsPlain:
		return NewArtifact(segments[0], segments[1], segments[2]), nil
	case coordinateSegmentsPackaging:
		return NewArtifact(segments[0], segments[1], segments[3],
			WithPackaging(segments[2]),
		), nil
	case coordinateSegmentsClassifier:
		return NewArtifact(segments[0], segments[1], segments[4],
			WithPackaging(segments[2]),
			WithClassifier(segments[3]),
		), nil
	default:
		return Artifact{}, zerr.With(ErrMalformedCoordinate, "coordinate", coordinate)
	}
}

// ParseExclusion parses a compact group:artifact exclusion string.
// Any segment count other than 2 returns ErrMalformedExclusion carrying the
// offending string.
func ParseExclusion(exclusion string) (Exclusion, error) {
	segments := strings.Split(exclusion, ":")
	if len(segments) != exclusionSegments {
		return Exclusion{}, zerr.With(ErrMalformedExclusion, "exclusion", exclusion)
	}
	return NewExclusion(segments[0], segments[1]), nil
}
