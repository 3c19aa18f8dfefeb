package sample

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/options"
)

// Set is an ordered collection of samples, strictly increasing in X.
//
// The logical count is the slice length; the backing array (its capacity) is
// kept across Reset so a set can be refilled without reallocating. Insertions
// reuse spare capacity before growing.
//
// A zero Set is uninitialized: every method except IsInitialized panics with
// errs.ErrUninitialized. Create sets with New, NewWithDomain or Init.
type Set[P, V any] struct {
	domain          Domain[P]
	samples         []Sample[P, V]
	linearThreshold int
}

// New creates an empty set ordered by the Numeric domain of P.
//
// Parameters:
//   - opts: Optional configuration (WithCapacity, WithLinearThreshold)
//
// Returns:
//   - *Set[P, V]: The new empty set
//   - error: An error wrapping errs.ErrInvalidOption if an option is invalid
//
// Example:
//
//	set, err := sample.New[float64, string](sample.WithCapacity(64))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New[P Number, V any](opts ...Option) (*Set[P, V], error) {
	return NewWithDomain[P, V](Numeric[P]{}, opts...)
}

// NewWithDomain creates an empty set ordered by domain.
//
// Parameters:
//   - domain: Ordering and measuring capability for P (must not be nil)
//   - opts: Optional configuration (WithCapacity, WithLinearThreshold)
//
// Returns:
//   - *Set[P, V]: The new empty set
//   - error: An error wrapping errs.ErrInvalidOption if the domain is nil or
//     incomplete, or if an option is invalid
func NewWithDomain[P, V any](domain Domain[P], opts ...Option) (*Set[P, V], error) {
	if domain == nil {
		return nil, fmt.Errorf("%w: nil domain", errs.ErrInvalidOption)
	}
	if fd, ok := domain.(FuncDomain[P]); ok && !fd.complete() {
		return nil, fmt.Errorf("%w: FuncDomain requires LessFunc, FractionFunc and LerpFunc", errs.ErrInvalidOption)
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Set[P, V]{
		domain:          domain,
		samples:         make([]Sample[P, V], 0, cfg.capacity),
		linearThreshold: cfg.linearThreshold,
	}, nil
}

// Init prepares a numeric set for use and returns it.
//
// A nil existing allocates a new set with default settings. A zero Set is
// initialized in place with the Numeric domain. An already initialized set is
// Reset, keeping its domain, settings and backing array.
//
// Parameters:
//   - existing: A set to reuse, or nil
//
// Returns:
//   - *Set[P, V]: existing (or a new set), empty and ready for use
func Init[P Number, V any](existing *Set[P, V]) *Set[P, V] {
	if existing == nil {
		return &Set[P, V]{
			domain:          Numeric[P]{},
			linearThreshold: DefaultLinearThreshold,
		}
	}

	if existing.domain == nil {
		existing.domain = Numeric[P]{}
		existing.linearThreshold = DefaultLinearThreshold
	}
	existing.Reset()

	return existing
}

// IsInitialized reports whether the set was created by New, NewWithDomain or Init.
func (s *Set[P, V]) IsInitialized() bool {
	return s != nil && s.domain != nil
}

// Reset discards all samples but keeps the backing array for reuse.
//
// Payloads held in the discarded slots are zeroed so they can be collected.
func (s *Set[P, V]) Reset() {
	s.mustInit("Reset")

	clear(s.samples)
	s.samples = s.samples[:0]
}

// Count returns the number of samples in the set.
func (s *Set[P, V]) Count() int {
	s.mustInit("Count")

	return len(s.samples)
}

// Cap returns the number of samples the set can hold without reallocating.
func (s *Set[P, V]) Cap() int {
	s.mustInit("Cap")

	return cap(s.samples)
}

// Domain returns the domain ordering the set.
func (s *Set[P, V]) Domain() Domain[P] {
	s.mustInit("Domain")

	return s.domain
}

// At returns the sample at index i, or false if i is out of range.
func (s *Set[P, V]) At(i int) (Sample[P, V], bool) {
	s.mustInit("At")

	if i < 0 || i >= len(s.samples) {
		return Sample[P, V]{}, false
	}

	return s.samples[i], true
}

// First returns the sample with the smallest X, or false if the set is empty.
func (s *Set[P, V]) First() (Sample[P, V], bool) {
	return s.At(0)
}

// Last returns the sample with the largest X, or false if the set is empty.
func (s *Set[P, V]) Last() (Sample[P, V], bool) {
	s.mustInit("Last")

	return s.At(len(s.samples) - 1)
}

// All returns a sequence of (index, sample) pairs in increasing X order.
//
// The set must not be mutated while the sequence is being consumed.
func (s *Set[P, V]) All() iter.Seq2[int, Sample[P, V]] {
	s.mustInit("All")

	return func(yield func(int, Sample[P, V]) bool) {
		for i, smp := range s.samples {
			if !yield(i, smp) {
				return
			}
		}
	}
}

// Samples returns a copy of the samples in increasing X order.
func (s *Set[P, V]) Samples() []Sample[P, V] {
	s.mustInit("Samples")

	return slices.Clone(s.samples)
}

// Clone returns an independent copy of the set with the same domain and settings.
// Payloads are copied shallowly.
func (s *Set[P, V]) Clone() *Set[P, V] {
	s.mustInit("Clone")

	samples := make([]Sample[P, V], len(s.samples), cap(s.samples))
	copy(samples, s.samples)

	return &Set[P, V]{
		domain:          s.domain,
		samples:         samples,
		linearThreshold: s.linearThreshold,
	}
}

// Add inserts the sample (x, y), or overwrites the Y of the sample already at x.
//
// The insertion point is derived from a search seeded with hint, so Add can
// never break the ordering. Prepends and interior inserts shift later samples
// right inside the existing backing array when it has room.
//
// Panics with errs.ErrUninitialized on a zero Set and with errs.ErrInvalidParam
// if the domain cannot order x.
//
// Parameters:
//   - x: Sample parameter
//   - y: Sample payload
//   - hint: A previously returned bin, or NoHint
//
// Returns:
//   - int: Index of the written sample
//   - bool: true if a new sample was inserted, false if an existing one was updated
func (s *Set[P, V]) Add(x P, y V, hint int) (int, bool) {
	s.mustInit("Add")
	s.mustValid("Add", x)

	n := len(s.samples)
	if n == 0 || s.domain.Less(s.samples[n-1].X, x) {
		s.samples = append(s.samples, Sample[P, V]{X: x, Y: y})
		return n, true
	}

	if s.domain.Less(x, s.samples[0].X) {
		s.samples = slices.Insert(s.samples, 0, Sample[P, V]{X: x, Y: y})
		return 0, true
	}

	pos := s.search(x, hint)
	switch pos.Edge {
	case EdgeLeft:
		s.samples[pos.Bin].Y = y
		return pos.Bin, false
	case EdgeRight:
		// only reachable when x equals the last sample
		s.samples[n-1].Y = y
		return n - 1, false
	default:
		idx := pos.Bin + 1
		s.samples = slices.Insert(s.samples, idx, Sample[P, V]{X: x, Y: y})

		return idx, true
	}
}

// Append adds (x, y) after the last sample.
//
// It is the cheap path for building a set in order.
//
// Returns:
//   - error: errs.ErrInvalidParam if the domain cannot order x,
//     errs.ErrOrderingViolation if x does not exceed the last sample's X
func (s *Set[P, V]) Append(x P, y V) error {
	s.mustInit("Append")

	if !s.domain.Valid(x) {
		return errs.ErrInvalidParam
	}

	n := len(s.samples)
	if n > 0 && !s.domain.Less(s.samples[n-1].X, x) {
		return errs.ErrOrderingViolation
	}

	s.samples = append(s.samples, Sample[P, V]{X: x, Y: y})

	return nil
}

// Update overwrites both X and Y of the sample at index.
//
// The new X must stay strictly between the neighbouring samples; a missing
// neighbour does not constrain. Nothing is modified when an error is returned.
//
// Parameters:
//   - index: Index of the sample to overwrite
//   - x: New sample parameter
//   - y: New sample payload
//
// Returns:
//   - Sample[P, V]: The sample as it was before the update
//   - error: errs.ErrInvalidIndex, errs.ErrInvalidParam or errs.ErrOrderingViolation
func (s *Set[P, V]) Update(index int, x P, y V) (Sample[P, V], error) {
	s.mustInit("Update")

	n := len(s.samples)
	if index < 0 || index >= n {
		return Sample[P, V]{}, errs.ErrInvalidIndex
	}

	if !s.domain.Valid(x) {
		return Sample[P, V]{}, errs.ErrInvalidParam
	}

	if index > 0 && !s.domain.Less(s.samples[index-1].X, x) {
		return Sample[P, V]{}, errs.ErrOrderingViolation
	}
	if index < n-1 && !s.domain.Less(x, s.samples[index+1].X) {
		return Sample[P, V]{}, errs.ErrOrderingViolation
	}

	old := s.samples[index]
	s.samples[index] = Sample[P, V]{X: x, Y: y}

	return old, nil
}

// SetEntry overwrites the Y of the sample at index, leaving its X in place.
//
// Returns:
//   - V: The previous payload
//   - error: errs.ErrInvalidIndex if index is out of range
func (s *Set[P, V]) SetEntry(index int, y V) (V, error) {
	s.mustInit("SetEntry")

	if index < 0 || index >= len(s.samples) {
		var zero V
		return zero, errs.ErrInvalidIndex
	}

	old := s.samples[index].Y
	s.samples[index].Y = y

	return old, nil
}

// String returns a short description of the set.
func (s *Set[P, V]) String() string {
	if !s.IsInitialized() {
		return "Set{uninitialized}"
	}

	return fmt.Sprintf("Set{Count: %d, Cap: %d}", len(s.samples), cap(s.samples))
}

func (s *Set[P, V]) mustInit(op string) {
	if s == nil || s.domain == nil {
		panic(fmt.Errorf("sample: %s: %w", op, errs.ErrUninitialized))
	}
}

func (s *Set[P, V]) mustNotEmpty(op string) {
	if len(s.samples) == 0 {
		panic(fmt.Errorf("sample: %s: %w", op, errs.ErrEmptySet))
	}
}

func (s *Set[P, V]) mustValid(op string, x P) {
	if !s.domain.Valid(x) {
		panic(fmt.Errorf("sample: %s: %w: %v", op, errs.ErrInvalidParam, x))
	}
}
