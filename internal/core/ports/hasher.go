package ports

import "context"

// FileHasher defines the interface for checksumming fetched artifact files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// ChecksumAll computes a checksum per file path. The returned map is keyed
	// by the input paths; paths that do not exist are reported as errors.
	ChecksumAll(ctx context.Context, paths []string) (map[string]string, error)
}
