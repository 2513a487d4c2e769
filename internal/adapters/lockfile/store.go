// Package lockfile implements pinned-resolution storage in a flat JSON file.
package lockfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultFilename is the lock file written next to the manifest.
const DefaultFilename = "coord.lock.json"

// Store implements ports.PinStore using a flat JSON file keyed by request hash.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]*domain.Resolution
}

// NewStore creates a new PinStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]*domain.Resolution),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read lock file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal lock file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lock file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for lock file")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write lock file")
	}

	return nil
}

// Get retrieves the pinned resolution for a request key.
func (s *Store) Get(requestKey string) (*domain.Resolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.cache[requestKey]
	if !ok {
		return nil, nil
	}
	return res, nil
}

// Put stores the resolution under the given request key.
func (s *Store) Put(requestKey string, res *domain.Resolution) error {
	// Update cache first
	s.mu.Lock()
	s.cache[requestKey] = res
	s.mu.Unlock()

	// Then save to disk
	return s.save()
}
