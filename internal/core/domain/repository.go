package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Repository is the canonical record for a Maven repository endpoint.
// Credentials, when present, always carry both user and password.
type Repository struct {
	URL         string
	Credentials *Credentials
}

// Credentials holds basic-auth credentials for a repository. Both fields are
// required whenever the record exists at all; NewRepository refuses to
// construct one with only half of the pair.
type Credentials struct {
	User     string
	Password string
}

// RepositoryOption configures an optional field on a new Repository.
type RepositoryOption func(*repositoryConfig)

type repositoryConfig struct {
	user     *string
	password *string
}

// WithUser sets the basic-auth username.
func WithUser(user string) RepositoryOption {
	return func(c *repositoryConfig) {
		c.user = &user
	}
}

// WithPassword sets the basic-auth password.
func WithPassword(password string) RepositoryOption {
	return func(c *repositoryConfig) {
		c.password = &password
	}
}

// NewRepository creates a Repository from a URL and optional credentials.
// Supplying exactly one of user/password is an error; supplying neither
// yields a repository without a credentials record.
func NewRepository(url string, opts ...RepositoryOption) (Repository, error) {
	var cfg repositoryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if (cfg.user == nil) != (cfg.password == nil) {
		return Repository{}, zerr.With(ErrIncompleteCredentials, "repo_url", url)
	}

	r := Repository{URL: url}
	if cfg.user != nil {
		r.Credentials = &Credentials{
			User:     *cfg.user,
			Password: *cfg.password,
		}
	}
	return r, nil
}

// AuthenticatedURL derives the resolver-facing endpoint for the repository.
// When credentials are present the URL is rebuilt as
// protocol//user:password@remainder; otherwise it is returned unchanged.
// A URL without a protocol separator cannot carry embedded credentials.
func (r Repository) AuthenticatedURL() (string, error) {
	if r.Credentials == nil {
		return r.URL, nil
	}

	protocol, remainder, found := strings.Cut(r.URL, "//")
	if !found {
		return "", zerr.With(ErrMalformedRepositoryURL, "repo_url", r.URL)
	}

	return protocol + "//" + r.Credentials.User + ":" + r.Credentials.Password + "@" + remainder, nil
}
