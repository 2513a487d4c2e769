package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/coord/internal/engine/request"
)

func TestBuilder_Build(t *testing.T) {
	structured := domain.NewArtifact("io.grpc", "grpc-api", "1.56.0",
		domain.WithNeverlink(true),
	)

	m := &domain.Manifest{
		Artifacts: []domain.RawArtifact{
			domain.ArtifactString("com.google.guava:guava:31.1-jre"),
			domain.ArtifactSpec(structured),
		},
		Repositories: []domain.RawRepository{
			domain.RepositoryString("https://repo1.maven.org/maven2"),
		},
		Exclusions: []domain.RawExclusion{
			domain.ExclusionString("com.google.guava:listenablefuture"),
		},
		FetchSources: true,
	}

	req, err := request.NewBuilder().Build(m)
	require.NoError(t, err)

	require.Len(t, req.Artifacts, 2)
	assert.Equal(t, domain.NewArtifact("com.google.guava", "guava", "31.1-jre"), req.Artifacts[0])
	assert.Equal(t, structured, req.Artifacts[1])

	require.Len(t, req.Repositories, 1)
	assert.Equal(t, domain.Repository{URL: "https://repo1.maven.org/maven2"}, req.Repositories[0])

	require.Len(t, req.Exclusions, 1)
	assert.Equal(t, domain.NewExclusion("com.google.guava", "listenablefuture"), req.Exclusions[0])

	assert.True(t, req.FetchSources)
	assert.False(t, req.FetchJavadoc)
}

func TestBuilder_Build_NoArtifacts(t *testing.T) {
	_, err := request.NewBuilder().Build(&domain.Manifest{})
	require.ErrorIs(t, err, domain.ErrNoArtifactsDeclared)
}

func TestBuilder_Build_MalformedCoordinate(t *testing.T) {
	m := &domain.Manifest{
		Artifacts: []domain.RawArtifact{
			domain.ArtifactString("not-a-coordinate"),
		},
	}

	_, err := request.NewBuilder().Build(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed artifact coordinate")
}
