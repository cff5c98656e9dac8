package bundles

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/logging"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/rs/zerolog"
)

// Invalidator drops any cached compiled form of the registry file once it
// has been rewritten.
type Invalidator func(fsys types.FS, path string) error

// TouchInvalidator bumps the modification time of path, which is enough for
// caches validating entries by timestamp.
func TouchInvalidator(fsys types.FS, path string) error {
	now := time.Now()
	return fsys.Chtimes(path, now, now)
}

// Store reads and rewrites one registry file
type Store struct {
	fs         types.FS
	path       string
	codec      Codec
	invalidate Invalidator
	logger     zerolog.Logger
}

// StoreOption customizes a Store
type StoreOption func(*Store)

// WithInvalidator replaces the default TouchInvalidator. nil disables
// invalidation.
func WithInvalidator(inv Invalidator) StoreOption {
	return func(s *Store) { s.invalidate = inv }
}

// NewStore creates a store for the registry file in dir
func NewStore(fsys types.FS, dir string, codec Codec, opts ...StoreOption) *Store {
	s := &Store{
		fs:         fsys,
		path:       filepath.Join(dir, FileName(codec)),
		codec:      codec,
		invalidate: TouchInvalidator,
		logger:     logging.GetLogger("bundles.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the registry file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry. A missing file is an empty registry.
func (s *Store) Load() (*Registry, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Registry{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", s.path)
	}

	r, err := s.codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryParse, "cannot parse %s", s.path).
			WithDetail("path", s.path)
	}
	return r, nil
}

// Save regenerates the registry file from r, then invalidates caches
func (s *Store) Save(r *Registry) error {
	data, err := s.codec.Encode(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir)
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRegistryWrite, "cannot write %s", s.path).
			WithDetail("path", s.path)
	}

	if s.invalidate != nil {
		if err := s.invalidate(s.fs, s.path); err != nil {
			// non-fatal: the registry is already on disk
			s.logger.Warn().Err(err).Str("path", s.path).Msg("Cache invalidation failed")
		}
	}

	s.logger.Debug().Str("path", s.path).Int("bundles", r.Len()).Msg("Registry written")
	return nil
}

// Register merges incoming into the stored registry and rewrites it
func (s *Store) Register(incoming *Registry, policy MergePolicy) (*Registry, error) {
	existing, err := s.Load()
	if err != nil {
		return nil, err
	}

	merged := Merge(existing, incoming, policy)
	if err := s.Save(merged); err != nil {
		return nil, err
	}
	s.logger.Info().Strs("bundles", incoming.IDs()).Str("policy", string(policy)).Msg("Bundles registered")
	return merged, nil
}

// Unregister drops ids from the stored registry and rewrites it
func (s *Store) Unregister(ids []string) (*Registry, error) {
	existing, err := s.Load()
	if err != nil {
		return nil, err
	}

	remaining := Remove(existing, ids)
	if err := s.Save(remaining); err != nil {
		return nil, err
	}
	s.logger.Info().Strs("bundles", ids).Msg("Bundles unregistered")
	return remaining, nil
}
