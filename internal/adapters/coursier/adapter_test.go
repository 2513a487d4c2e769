package coursier_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/coord/internal/adapters/coursier"
	"go.trai.ch/coord/internal/core/domain"
)

func TestAdapter_Resolve_CacheHit(t *testing.T) {
	req := &domain.Request{
		Artifacts: []domain.Artifact{domain.NewArtifact("g", "a", "1.0")},
	}

	key, err := coursier.RequestKey(req)
	require.NoError(t, err)

	cached := &domain.Resolution{
		Artifacts: []domain.ResolvedArtifact{
			{Coordinate: "g:a:1.0", File: "/cache/a-1.0.jar"},
		},
	}

	// Pre-populate the cache so Resolve never spawns the binary.
	cachePath := filepath.Join(t.TempDir(), "resolutions.json")
	data, err := json.Marshal(map[string]*domain.Resolution{key: cached})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cachePath, data, 0o600))

	// A binary that cannot exist; a cache miss would fail loudly.
	adapter := coursier.New("/nonexistent/coursier", cachePath)

	got, err := adapter.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestAdapter_Resolve_MissingBinary(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "resolutions.json")
	adapter := coursier.New("/nonexistent/coursier", cachePath)

	req := &domain.Request{
		Artifacts: []domain.Artifact{domain.NewArtifact("g", "a", "1.0")},
	}

	_, err := adapter.Resolve(context.Background(), req)
	require.Error(t, err)
}

func TestBuildArgs(t *testing.T) {
	withCreds, err := domain.NewRepository("https://maven.example.com/releases",
		domain.WithUser("u"),
		domain.WithPassword("p"),
	)
	require.NoError(t, err)

	req := &domain.Request{
		Artifacts: []domain.Artifact{
			domain.NewArtifact("g", "a", "1.0", domain.WithClassifier("sources")),
		},
		Repositories: []domain.Repository{
			{URL: "https://repo1.maven.org/maven2"},
			withCreds,
		},
		FetchSources: true,
	}

	args, err := coursier.BuildArgs(req, "/tmp/request.json", "/tmp/report.json")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"resolve",
		"--request", "/tmp/request.json",
		"--report", "/tmp/report.json",
		"--sources",
		"--repository", "https://repo1.maven.org/maven2",
		"--repository", "https://u:p@maven.example.com/releases",
		"g:a:1.0,classifier=sources",
	}, args)
}

func TestBuildArgs_MalformedRepositoryURL(t *testing.T) {
	req := &domain.Request{
		Artifacts: []domain.Artifact{domain.NewArtifact("g", "a", "1.0")},
		Repositories: []domain.Repository{
			{URL: "maven.example.com", Credentials: &domain.Credentials{User: "u", Password: "p"}},
		},
	}

	_, err := coursier.BuildArgs(req, "req.json", "rep.json")
	require.ErrorIs(t, err, domain.ErrMalformedRepositoryURL)
}

func TestParseReport(t *testing.T) {
	report := `{
  "dependencies": [
    {
      "coord": "com.google.guava:guava:31.1-jre",
      "file": "/cache/guava-31.1-jre.jar",
      "dependencies": ["com.google.guava:failureaccess:1.0.1"]
    },
    {
      "coord": "com.google.guava:failureaccess:1.0.1",
      "file": "/cache/failureaccess-1.0.1.jar"
    }
  ]
}`

	res, err := coursier.ParseReport([]byte(report))
	require.NoError(t, err)

	require.Len(t, res.Artifacts, 2)
	assert.Equal(t, "com.google.guava:guava:31.1-jre", res.Artifacts[0].Coordinate)
	assert.Equal(t, "/cache/guava-31.1-jre.jar", res.Artifacts[0].File)
	assert.Equal(t, []string{"com.google.guava:failureaccess:1.0.1"}, res.Artifacts[0].Dependencies)
	assert.Empty(t, res.Artifacts[1].Dependencies)
}

func TestParseReport_Invalid(t *testing.T) {
	_, err := coursier.ParseReport([]byte("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse resolver report")
}
