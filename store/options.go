package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/options"
)

const (
	// DefaultCacheTTL is how long a parsed set stays cached.
	DefaultCacheTTL = 5 * time.Minute
	// DefaultConcurrency bounds the number of files LoadAll reads at once.
	DefaultConcurrency = 8
)

type config struct {
	cacheTTL    time.Duration
	concurrency int
	logger      *zap.Logger
}

func defaultConfig() config {
	return config{
		cacheTTL:    DefaultCacheTTL,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
}

// Option configures a FileStore.
type Option = options.Option[*config]

// WithCacheTTL sets how long parsed sets are cached. Zero disables the cache.
//
// Returns an error wrapping errs.ErrInvalidOption if ttl is negative.
func WithCacheTTL(ttl time.Duration) Option {
	return options.New("WithCacheTTL", func(cfg *config) error {
		if ttl < 0 {
			return fmt.Errorf("%w: negative cache TTL %s", errs.ErrInvalidOption, ttl)
		}
		cfg.cacheTTL = ttl

		return nil
	})
}

// WithConcurrency bounds the number of files LoadAll reads in parallel.
//
// Returns an error wrapping errs.ErrInvalidOption if n is less than 1.
func WithConcurrency(n int) Option {
	return options.New("WithConcurrency", func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("%w: concurrency %d", errs.ErrInvalidOption, n)
		}
		cfg.concurrency = n

		return nil
	})
}

// WithLogger sets the store logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(cfg *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		cfg.logger = logger
	})
}
