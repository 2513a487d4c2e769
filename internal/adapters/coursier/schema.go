package coursier

import (
	"encoding/json"

	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/zerr"
)

// reportFile mirrors the JSON report the coursier process writes.
type reportFile struct {
	Dependencies []reportDependency `json:"dependencies"`
}

type reportDependency struct {
	Coord        string   `json:"coord"`
	File         string   `json:"file"`
	Dependencies []string `json:"dependencies"`
}

// ParseReport translates the resolver's JSON report into a domain.Resolution.
func ParseReport(data []byte) (*domain.Resolution, error) {
	var report reportFile
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.Wrap(err, domain.ErrResolverReportInvalid.Error())
	}

	res := &domain.Resolution{
		Artifacts: make([]domain.ResolvedArtifact, len(report.Dependencies)),
	}
	for i, dep := range report.Dependencies {
		res.Artifacts[i] = domain.ResolvedArtifact{
			Coordinate:   dep.Coord,
			File:         dep.File,
			Dependencies: dep.Dependencies,
		}
	}
	return res, nil
}
