package sample

import (
	"fmt"
	"math"

	"github.com/arloliu/sampleset/errs"
)

// Lookup resolves x to its bracketing samples and relative position.
//
// Out-of-range queries are clamped: below the first sample the result is bin 0
// with Frac 0 and OutOfBounds Below; above the last sample it is the last bin
// with Frac 1 and OutOfBounds Above. A single-sample set reports that sample in
// both slots with Frac 0.
//
// Panics with errs.ErrEmptySet if the set has no samples and with
// errs.ErrInvalidParam if the domain cannot order x.
//
// Parameters:
//   - x: Query parameter
//   - hint: A previously returned bin, or NoHint
//
// Returns:
//   - Result[P, V]: Bracketing samples, bin, fraction and clamping indicator
func (s *Set[P, V]) Lookup(x P, hint int) Result[P, V] {
	s.mustInit("Lookup")
	s.mustNotEmpty("Lookup")
	s.mustValid("Lookup", x)

	return s.resolve(x, s.search(x, hint))
}

// Lookup01 resolves a normalized position t, where 0 maps to the first sample
// and 1 to the last, by remapping t to the parameter domain and calling Lookup.
//
// Values of t below 0 resolve to the first sample flagged Below, values above
// 1 to the last sample flagged Above, the same result Lookup gives for a
// parameter outside the sample range. A single-sample set resolves every t to
// that sample, in bounds.
//
// Panics with errs.ErrEmptySet if the set has no samples. The emptiness check
// happens before remapping, so the failure is the same as for Lookup.
func (s *Set[P, V]) Lookup01(t float64, hint int) Result[P, V] {
	s.mustInit("Lookup01")
	s.mustNotEmpty("Lookup01")
	if math.IsNaN(t) {
		panic(fmt.Errorf("sample: Lookup01: %w: %v", errs.ErrInvalidParam, t))
	}

	n := len(s.samples)
	if n == 1 {
		return s.resolve(s.samples[0].X, Position{Bin: 0, Edge: EdgeLeft})
	}

	switch {
	case t < 0:
		return s.resolve(s.samples[0].X, Position{Bin: 0, Edge: EdgeLeft, OutOfBounds: Below})
	case t > 1:
		return s.resolve(s.samples[n-1].X, Position{Bin: n - 2, Edge: EdgeRight, OutOfBounds: Above})
	}

	x := s.domain.Lerp(s.samples[0].X, s.samples[n-1].X, t)

	return s.Lookup(x, hint)
}

// ToBin resolves x to a bin and fraction, refusing out-of-range queries.
//
// Returns:
//   - int: The bin, or -1 if x is out of range
//   - float64: The fraction within the bin, or 0 if x is out of range
//   - bool: false if x lies outside [X[0], X[n-1]]
func (s *Set[P, V]) ToBin(x P, hint int) (int, float64, bool) {
	s.mustInit("ToBin")
	s.mustNotEmpty("ToBin")
	s.mustValid("ToBin", x)

	pos := s.search(x, hint)
	if pos.OutOfBounds != InBounds {
		return -1, 0, false
	}

	return pos.Bin, s.fraction(x, pos), true
}

// ToBinClamped resolves x to a bin and fraction, clamping out-of-range
// queries to the nearest end and reporting which end was used.
func (s *Set[P, V]) ToBinClamped(x P, hint int) (int, float64, OutOfBounds) {
	s.mustInit("ToBinClamped")
	s.mustNotEmpty("ToBinClamped")
	s.mustValid("ToBinClamped", x)

	pos := s.search(x, hint)

	return pos.Bin, s.fraction(x, pos), pos.OutOfBounds
}

func (s *Set[P, V]) resolve(x P, pos Position) Result[P, V] {
	left := s.samples[pos.Bin]
	if len(s.samples) == 1 {
		return Result[P, V]{
			X1:          left.X,
			Y1:          left.Y,
			X2:          left.X,
			Y2:          left.Y,
			Bin:         0,
			Frac:        0,
			OutOfBounds: pos.OutOfBounds,
		}
	}

	right := s.samples[pos.Bin+1]

	return Result[P, V]{
		X1:          left.X,
		Y1:          left.Y,
		X2:          right.X,
		Y2:          right.Y,
		Bin:         pos.Bin,
		Frac:        s.fraction(x, pos),
		OutOfBounds: pos.OutOfBounds,
	}
}

func (s *Set[P, V]) fraction(x P, pos Position) float64 {
	switch pos.Edge {
	case EdgeLeft:
		return 0
	case EdgeRight:
		return 1
	}

	// X[bin] < x < X[bin+1] here, so the span is never zero
	return s.domain.Fraction(x, s.samples[pos.Bin].X, s.samples[pos.Bin+1].X)
}
