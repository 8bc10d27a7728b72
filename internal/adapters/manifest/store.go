package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore on top of a shared Cache.
type Store struct {
	fs      ports.FileSystem
	cache   *Cache
	logger  ports.Logger
	lenient bool
}

// Option configures a Store.
type Option func(*Store)

// WithLenient makes unparsable manifests load as empty instead of failing.
func WithLenient(lenient bool) Option {
	return func(s *Store) {
		s.lenient = lenient
	}
}

// NewStore creates a Store reading through fsys and memoizing into cache.
func NewStore(fsys ports.FileSystem, cache *Cache, logger ports.Logger, opts ...Option) *Store {
	s := &Store{
		fs:     fsys,
		cache:  cache,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the manifest at path, reading it at most once per absolute path.
//
// A lenient Store that meets an unparsable manifest caches the empty fallback
// under its own key, so strict Stores sharing the cache still fail.
func (s *Store) Load(path string) (*domain.Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	if s.lenient {
		if m, ok := s.cache.Get(degradedKey(abs)); ok {
			return m, nil
		}
	}

	m, err := s.cache.GetOrLoad(abs, func() (*domain.Manifest, error) {
		return s.read(abs)
	})
	if err == nil || !s.lenient || !errors.Is(err, domain.ErrManifestParseFailed) {
		return m, err
	}

	return s.cache.GetOrLoad(degradedKey(abs), func() (*domain.Manifest, error) {
		return s.degraded(abs)
	})
}

// degradedKey is the cache key of the empty manifest a lenient Store
// substitutes for an unparsable one.
func degradedKey(path string) string {
	return path + "\x00lenient"
}

func (s *Store) read(path string) (*domain.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrManifestNotFound, err), "path", path)
	}
	return parse(path, data)
}

func (s *Store) degraded(path string) (*domain.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrManifestNotFound, err), "path", path)
	}
	s.logger.Warn(fmt.Sprintf("manifest %s could not be parsed, treating it as empty (lenient_manifest is set)", path))
	return domain.NewManifest(path, xxhash.Sum64(data), nil), nil
}

func parse(path string, data []byte) (*domain.Manifest, error) {
	var chunks map[string]domain.Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrManifestParseFailed, err), "path", path)
	}

	// JSON null decodes into a nil map without error.
	if chunks == nil {
		return nil, zerr.With(zerr.With(domain.Fail(domain.ErrManifestParseFailed, nil), "path", path), "reason", "manifest is not a JSON object")
	}

	return domain.NewManifest(path, xxhash.Sum64(data), chunks), nil
}
