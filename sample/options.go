package sample

import (
	"fmt"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/options"
)

// DefaultLinearThreshold is the search window width (in bins) at or below
// which the search switches from bisection to a forward linear scan.
const DefaultLinearThreshold = 5

type config struct {
	capacity        int
	linearThreshold int
}

func defaultConfig() config {
	return config{
		capacity:        0,
		linearThreshold: DefaultLinearThreshold,
	}
}

// Option configures a Set at construction time.
type Option = options.Option[*config]

// WithCapacity preallocates room for n samples.
//
// Returns an error wrapping errs.ErrInvalidOption if n is negative.
func WithCapacity(n int) Option {
	return options.New("WithCapacity", func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidOption, n)
		}
		cfg.capacity = n

		return nil
	})
}

// WithLinearThreshold sets the window width at which the search stops
// bisecting and scans linearly. Zero bisects down to a single bin.
//
// Returns an error wrapping errs.ErrInvalidOption if n is negative.
func WithLinearThreshold(n int) Option {
	return options.New("WithLinearThreshold", func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative linear threshold %d", errs.ErrInvalidOption, n)
		}
		cfg.linearThreshold = n

		return nil
	})
}
