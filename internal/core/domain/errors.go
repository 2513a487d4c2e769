package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedCoordinate is returned when a compact coordinate string does not
	// split into 3, 4 or 5 colon-separated segments.
	ErrMalformedCoordinate = zerr.New("malformed artifact coordinate, expected group:artifact[:packaging[:classifier]]:version")

	// ErrMalformedExclusion is returned when a compact exclusion string does not
	// split into exactly 2 colon-separated segments.
	ErrMalformedExclusion = zerr.New("malformed exclusion, expected group:artifact")

	// ErrIncompleteCredentials is returned when a repository is built with exactly
	// one of username/password supplied.
	ErrIncompleteCredentials = zerr.New("incomplete credentials, user and password must be supplied together")

	// ErrMalformedRepositoryURL is returned when a repository URL lacks a protocol
	// separator and credential embedding is requested.
	ErrMalformedRepositoryURL = zerr.New("malformed repository url, missing protocol separator")

	// ErrResolverFailed is returned when the external resolver process exits with an error.
	ErrResolverFailed = zerr.New("resolver execution failed")

	// ErrResolverReportInvalid is returned when the resolver report cannot be parsed.
	ErrResolverReportInvalid = zerr.New("failed to parse resolver report")

	// ErrNoArtifactsDeclared is returned when a manifest declares no artifacts.
	ErrNoArtifactsDeclared = zerr.New("no artifacts declared")

	// ErrLockNotFound is returned when a pinned resolution is requested but the
	// lock file has no entry for the current request.
	ErrLockNotFound = zerr.New("no pinned resolution for this request")
)
