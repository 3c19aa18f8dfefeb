package sample

// Search resolves x to a bin without measuring the fraction.
//
// Queries below the first sample resolve to bin 0 with EdgeLeft; queries at or
// above the last sample resolve to the last bin with EdgeRight. On a
// single-sample set every query resolves to bin 0 with EdgeLeft, flagged Below
// or Above when it differs from the sample. Anything in between is found by
// bisection seeded at hint, switching to a forward linear scan once the window
// is narrow. An in-range query that matches a sample exactly resolves to the
// bin starting at that sample with EdgeLeft.
//
// The hint only affects how many comparisons are made, never the result.
//
// Panics with errs.ErrEmptySet if the set has no samples and with
// errs.ErrInvalidParam if the domain cannot order x.
//
// Parameters:
//   - x: Query parameter
//   - hint: A previously returned bin, or NoHint to start at the midpoint
//
// Returns:
//   - Position: The resolved bin, edge marker and clamping indicator
func (s *Set[P, V]) Search(x P, hint int) Position {
	s.mustInit("Search")
	s.mustNotEmpty("Search")
	s.mustValid("Search", x)

	return s.search(x, hint)
}

// search assumes a non-empty set and an ordered x.
func (s *Set[P, V]) search(x P, hint int) Position {
	d := s.domain
	samples := s.samples
	n := len(samples)

	if n == 1 || d.Less(x, samples[0].X) {
		oob := InBounds
		if d.Less(x, samples[0].X) {
			oob = Below
		} else if d.Less(samples[0].X, x) {
			// single sample: the fraction stays 0 on both sides
			oob = Above
		}

		return Position{Bin: 0, Edge: EdgeLeft, OutOfBounds: oob}
	}

	if !d.Less(x, samples[n-1].X) {
		oob := InBounds
		if d.Less(samples[n-1].X, x) {
			oob = Above
		}

		return Position{Bin: n - 2, Edge: EdgeRight, OutOfBounds: oob}
	}

	// X[lo] <= x < X[hi+1] holds throughout.
	lo, hi := 0, n-2
	i := lo + (hi-lo)/2
	if hint >= 0 {
		i = min(hint, hi)
	}

	for {
		if hi-lo <= s.linearThreshold {
			for i = lo; i < hi; i++ {
				if d.Less(x, samples[i+1].X) {
					break
				}
			}

			break
		}

		if d.Less(x, samples[i].X) {
			hi = i - 1
		} else if !d.Less(x, samples[i+1].X) {
			lo = i + 1
		} else {
			break
		}

		i = lo + (hi-lo)/2
	}

	edge := EdgeNone
	if !d.Less(samples[i].X, x) {
		edge = EdgeLeft
	}

	return Position{Bin: i, Edge: edge}
}
