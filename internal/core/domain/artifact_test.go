package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/coord/internal/core/domain"
)

func TestNewArtifact_OmitsUnsuppliedFields(t *testing.T) {
	a := domain.NewArtifact("com.google.guava", "guava", "31.1-jre")

	assert.Nil(t, a.Packaging)
	assert.Nil(t, a.Classifier)
	assert.Nil(t, a.OverrideLicenseTypes)
	assert.Nil(t, a.Exclusions)
	assert.Nil(t, a.Neverlink)
}

func TestNewArtifact_Options(t *testing.T) {
	a := domain.NewArtifact("org.lwjgl", "lwjgl", "3.3.1",
		domain.WithPackaging("jar"),
		domain.WithClassifier("natives-linux"),
		domain.WithOverrideLicenseTypes("notice", "restricted"),
		domain.WithExclusions(
			domain.ExclusionString("org.lwjgl:lwjgl-opengl"),
			domain.ExclusionSpec(domain.NewExclusion("org.lwjgl", "lwjgl-glfw")),
		),
		domain.WithNeverlink(true),
	)

	assert.Equal(t, "jar", *a.Packaging)
	assert.Equal(t, "natives-linux", *a.Classifier)
	assert.Equal(t, []string{"notice", "restricted"}, a.OverrideLicenseTypes)
	assert.Len(t, a.Exclusions, 2)
	assert.True(t, *a.Neverlink)
}

func TestArtifact_Coordinate(t *testing.T) {
	tests := []struct {
		name     string
		artifact domain.Artifact
		want     string
	}{
		{
			name:     "Plain coordinate",
			artifact: domain.NewArtifact("g", "a", "1.0"),
			want:     "g:a:1.0",
		},
		{
			name: "Classifier is appended",
			artifact: domain.NewArtifact("g", "a", "1.0",
				domain.WithClassifier("sources"),
			),
			want: "g:a:1.0,classifier=sources",
		},
		{
			// Packaging never appears in the CLI coordinate form.
			name: "Packaging is ignored",
			artifact: domain.NewArtifact("g", "a", "1.0",
				domain.WithPackaging("aar"),
			),
			want: "g:a:1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.artifact.Coordinate())
		})
	}
}
