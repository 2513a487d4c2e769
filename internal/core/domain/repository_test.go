package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/coord/internal/core/domain"
)

func TestNewRepository(t *testing.T) {
	t.Run("Without credentials", func(t *testing.T) {
		r, err := domain.NewRepository("https://repo1.maven.org/maven2")
		require.NoError(t, err)
		assert.Equal(t, "https://repo1.maven.org/maven2", r.URL)
		assert.Nil(t, r.Credentials)
	})

	t.Run("With credentials", func(t *testing.T) {
		r, err := domain.NewRepository("https://maven.example.com/releases",
			domain.WithUser("deploy"),
			domain.WithPassword("hunter2"),
		)
		require.NoError(t, err)
		require.NotNil(t, r.Credentials)
		assert.Equal(t, "deploy", r.Credentials.User)
		assert.Equal(t, "hunter2", r.Credentials.Password)
	})

	t.Run("User without password", func(t *testing.T) {
		_, err := domain.NewRepository("https://maven.example.com",
			domain.WithUser("deploy"),
		)
		require.ErrorIs(t, err, domain.ErrIncompleteCredentials)
	})

	t.Run("Password without user", func(t *testing.T) {
		_, err := domain.NewRepository("https://maven.example.com",
			domain.WithPassword("hunter2"),
		)
		require.ErrorIs(t, err, domain.ErrIncompleteCredentials)
	})
}

func TestRepository_AuthenticatedURL(t *testing.T) {
	t.Run("Credentials are embedded after the protocol", func(t *testing.T) {
		r, err := domain.NewRepository("https://x/",
			domain.WithUser("a"),
			domain.WithPassword("b"),
		)
		require.NoError(t, err)

		url, err := r.AuthenticatedURL()
		require.NoError(t, err)
		assert.Equal(t, "https://a:b@x/", url)
	})

	t.Run("No credentials returns the URL unchanged", func(t *testing.T) {
		r, err := domain.NewRepository("https://repo1.maven.org/maven2")
		require.NoError(t, err)

		url, err := r.AuthenticatedURL()
		require.NoError(t, err)
		assert.Equal(t, "https://repo1.maven.org/maven2", url)
	})

	t.Run("Missing protocol separator", func(t *testing.T) {
		r, err := domain.NewRepository("maven.example.com/releases",
			domain.WithUser("a"),
			domain.WithPassword("b"),
		)
		require.NoError(t, err)

		_, err = r.AuthenticatedURL()
		require.ErrorIs(t, err, domain.ErrMalformedRepositoryURL)
	})
}
