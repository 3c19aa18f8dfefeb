package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/encoding"
	"github.com/arloliu/sampleset/internal/options"
	"github.com/arloliu/sampleset/sample"
)

const fileExt = ".yaml"

// FileStore is a directory of YAML-encoded float sets.
type FileStore struct {
	root   string
	cfg    config
	cached *cache.Cache // nil when caching is disabled
}

// New creates a store rooted at root. The directory is created on the first Save.
//
// Parameters:
//   - root: Directory holding the documents
//   - opts: Optional configuration (WithCacheTTL, WithConcurrency, WithLogger)
//
// Returns:
//   - *FileStore: The store
//   - error: An error wrapping errs.ErrInvalidOption if root is empty or an option is invalid
func New(root string, opts ...Option) (*FileStore, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty store root", errs.ErrInvalidOption)
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	s := &FileStore{root: root, cfg: cfg}
	if cfg.cacheTTL > 0 {
		s.cached = cache.New(cfg.cacheTTL, 2*cfg.cacheTTL)
	}

	return s, nil
}

// Root returns the store directory.
func (s *FileStore) Root() string {
	return s.root
}

// ValidateName checks that name can be used as a set name in the store: a
// valid snapshot set name that is also a plain file name.
func ValidateName(name string) error {
	if err := encoding.ValidateName(name); err != nil {
		return err
	}
	if strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q is not a plain file name", errs.ErrInvalidSetName, name)
	}

	return nil
}

func (s *FileStore) fileNameByKey(name string) string {
	return filepath.Join(s.root, name+fileExt)
}

// Save writes set under name, replacing any previous document.
//
// The document is written to a temporary file and renamed into place, so
// readers never observe a partial file.
func (s *FileStore) Save(name string, set *sample.Set[float64, float64]) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !set.IsInitialized() {
		return fmt.Errorf("%w: set %q", errs.ErrUninitialized, name)
	}

	data, err := marshalSet(name, set)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", name, err)
	}

	if err := os.MkdirAll(s.root, 0o700); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := writeFileAtomic(s.root, s.fileNameByKey(name), data); err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}

	if s.cached != nil {
		s.cached.SetDefault(name, set.Clone())
	}

	s.cfg.logger.Info("sample set saved",
		zap.String("name", name),
		zap.Int("count", set.Count()),
		zap.Int("bytes", len(data)),
	)

	return nil
}

// Load returns a copy of the set stored under name.
//
// Returns an error wrapping errs.ErrSetNotFound if there is no such document.
func (s *FileStore) Load(name string) (*sample.Set[float64, float64], error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if s.cached != nil {
		if v, ok := s.cached.Get(name); ok {
			s.cfg.logger.Debug("sample set cache hit", zap.String("name", name))
			set, _ := v.(*sample.Set[float64, float64])
			return set.Clone(), nil
		}
	}

	data, err := os.ReadFile(s.fileNameByKey(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", errs.ErrSetNotFound, name)
		}

		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}

	set, err := unmarshalSet(name, data)
	if err != nil {
		return nil, fmt.Errorf("store: parse %q: %w", name, err)
	}

	if s.cached != nil {
		s.cached.SetDefault(name, set.Clone())
	}

	s.cfg.logger.Debug("sample set loaded",
		zap.String("name", name),
		zap.Int("count", set.Count()),
	)

	return set, nil
}

// Delete removes the document stored under name.
//
// Returns an error wrapping errs.ErrSetNotFound if there is no such document.
func (s *FileStore) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if s.cached != nil {
		s.cached.Delete(name)
	}

	if err := os.Remove(s.fileNameByKey(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", errs.ErrSetNotFound, name)
		}

		return fmt.Errorf("store: delete %q: %w", name, err)
	}

	s.cfg.logger.Info("sample set deleted", zap.String("name", name))

	return nil
}

// List returns the names of all stored sets, sorted. A missing root
// directory holds no sets.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("store: list: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), fileExt)
		if !ok || ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// LoadAll loads several sets in parallel, at most WithConcurrency at a time.
// An empty names loads every stored set.
//
// The first failure cancels the remaining loads and is returned.
//
// Parameters:
//   - ctx: Context for cancellation
//   - names: Sets to load, or nil for all
//
// Returns:
//   - map[string]*sample.Set[float64, float64]: The loaded copies keyed by name
//   - error: The first load error or the context error
func (s *FileStore) LoadAll(ctx context.Context, names []string) (map[string]*sample.Set[float64, float64], error) {
	if len(names) == 0 {
		var err error
		if names, err = s.List(); err != nil {
			return nil, err
		}
	}

	results := make([]*sample.Set[float64, float64], len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			set, err := s.Load(name)
			if err != nil {
				return err
			}
			results[i] = set

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.cfg.logger.Warn("load all failed", zap.Int("requested", len(names)), zap.Error(err))
		return nil, err
	}

	out := make(map[string]*sample.Set[float64, float64], len(names))
	for i, name := range names {
		out[name] = results[i]
	}

	return out, nil
}

// Flush drops every cached set. Later loads read from disk again.
func (s *FileStore) Flush() {
	if s.cached != nil {
		s.cached.Flush()
	}
}

func writeFileAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
