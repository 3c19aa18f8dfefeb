package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type searchConfig struct {
	capacity  int
	threshold int
	calls     []string
}

var errNegative = errors.New("negative capacity")

func withCapacity(n int) Option[*searchConfig] {
	return New("WithCapacity", func(c *searchConfig) error {
		if n < 0 {
			return errNegative
		}
		c.capacity = n
		c.calls = append(c.calls, "capacity")

		return nil
	})
}

func withThreshold(n int) Option[*searchConfig] {
	return NoError(func(c *searchConfig) {
		c.threshold = n
		c.calls = append(c.calls, "threshold")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &searchConfig{}
		err := Apply(cfg, withThreshold(3), withCapacity(16))
		require.NoError(t, err)
		require.Equal(t, 16, cfg.capacity)
		require.Equal(t, 3, cfg.threshold)
		require.Equal(t, []string{"threshold", "capacity"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &searchConfig{}
		err := Apply(cfg, withCapacity(4), withCapacity(-1), withThreshold(9))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 4, cfg.capacity)
		require.Zero(t, cfg.threshold)
	})

	t.Run("labels errors with the option name", func(t *testing.T) {
		err := Apply(&searchConfig{}, withCapacity(-1))
		require.EqualError(t, err, "WithCapacity: negative capacity")
	})

	t.Run("unnamed option error is returned as is", func(t *testing.T) {
		opt := New("", func(*searchConfig) error { return errNegative })
		require.Same(t, errNegative, Apply(&searchConfig{}, opt))
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &searchConfig{}
		err := Apply(cfg, nil, withThreshold(2), nil)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.threshold)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &searchConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})
}

func TestNoError_PrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
