package sample

// NoHint tells a lookup that no previous bin is known; the search starts at
// the midpoint. Any negative hint has the same effect.
const NoHint = -1

// Sample is one (X, Y) pair of a Set. Y is opaque to the set.
type Sample[P, V any] struct {
	X P
	Y V
}

// OutOfBounds tells whether a query was clamped to the ends of a Set.
type OutOfBounds uint8

const (
	// InBounds means the query lies within [X[0], X[n-1]].
	InBounds OutOfBounds = iota
	// Below means the query is strictly less than the first sample.
	Below
	// Above means the query is strictly greater than the last sample.
	Above
)

// String returns "" for InBounds, "<" for Below and ">" for Above.
func (o OutOfBounds) String() string {
	switch o {
	case Below:
		return "<"
	case Above:
		return ">"
	default:
		return ""
	}
}

// Edge tells whether a resolved position sits exactly on one end of its bin,
// in which case the fraction is known without measuring.
type Edge uint8

const (
	// EdgeNone means the fraction has to be measured between the bin's samples.
	EdgeNone Edge = iota
	// EdgeLeft means the fraction is exactly 0: the query matches the bin's
	// left sample, or was clamped below the first sample.
	EdgeLeft
	// EdgeRight means the fraction is exactly 1: the query matches the last
	// sample, or was clamped above it.
	EdgeRight
)

// Position is the raw outcome of a search: the bin, the edge marker and the
// clamping indicator.
type Position struct {
	Bin         int
	Edge        Edge
	OutOfBounds OutOfBounds
}

// Result is a resolved lookup.
//
// (X1, Y1) and (X2, Y2) are the samples bracketing the query; both hold the
// only sample when the set has exactly one. Bin is the index of (X1, Y1) and
// Frac the query's relative position between X1 and X2, always within [0, 1].
type Result[P, V any] struct {
	X1          P
	Y1          V
	X2          P
	Y2          V
	Bin         int
	Frac        float64
	OutOfBounds OutOfBounds
}
