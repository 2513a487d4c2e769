// Package fs provides filesystem helpers for checksumming fetched artifacts.
package fs

import (
	"context"
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/coord/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.FileHasher = (*Hasher)(nil)

// Hasher computes xxhash checksums of artifact files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ChecksumAll computes checksums for all paths concurrently. The returned map
// is keyed by the input paths.
func (h *Hasher) ChecksumAll(ctx context.Context, paths []string) (map[string]string, error) {
	checksums := make(map[string]string, len(paths))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	// Use number of CPUs as concurrency limit
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		g.Go(func() error {
			sum, err := h.ComputeFileHash(path)
			if err != nil {
				return err
			}

			mu.Lock()
			checksums[path] = strconv.FormatUint(sum, 16)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return checksums, nil
}
