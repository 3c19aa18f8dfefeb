// Package options holds the functional options shared by the sample, snapshot
// and store constructors. Each of those packages aliases Option over its own
// unexported config struct, so callers only see sample.Option,
// snapshot.EncoderOption and store.Option.
package options

import "fmt"

// Option mutates a config of type T before the owning constructor uses it.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a closure over the option's arguments.
type Func[T any] struct {
	name string
	fn   func(T) error
}

func (f *Func[T]) apply(cfg T) error {
	err := f.fn(cfg)
	if err == nil || f.name == "" {
		return err
	}

	return fmt.Errorf("%s: %w", f.name, err)
}

// New returns an Option that may reject its arguments.
//
// Parameters:
//   - name: Exported option name, e.g. "WithCapacity", prefixed to any error
//   - fn: Applies the option to the config
//
// Returns:
//   - *Func[T]: The option
func New[T any](name string, fn func(T) error) *Func[T] {
	return &Func[T]{name: name, fn: fn}
}

// NoError returns an Option that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(cfg T) error {
			fn(cfg)
			return nil
		},
	}
}

// Apply runs opts against cfg in order and stops at the first error, which is
// returned labelled with the failing option's name. Nil options are skipped.
func Apply[T any](cfg T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(cfg); err != nil {
			return err
		}
	}

	return nil
}
