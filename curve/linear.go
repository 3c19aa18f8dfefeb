package curve

import (
	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/sample"
)

// Linear is a piecewise-linear function through a set of control points.
//
// Outside the control points the curve is flat: it holds the first or last
// value. A curve with a single point is constant.
type Linear struct {
	set    *sample.Set[float64, float64]
	cursor *sample.Cursor[float64, float64]
}

// NewLinear creates a curve through the given control points.
//
// Points may be given in any order; a later point with the same X replaces
// the earlier one.
//
// Parameters:
//   - points: Control points (at least one)
//
// Returns:
//   - *Linear: The curve
//   - error: errs.ErrEmptySet if no points are given, errs.ErrInvalidParam if a point has a NaN X
func NewLinear(points ...sample.Sample[float64, float64]) (*Linear, error) {
	if len(points) == 0 {
		return nil, errs.ErrEmptySet
	}

	set, err := sample.New[float64, float64](sample.WithCapacity(len(points)))
	if err != nil {
		return nil, err
	}

	c := set.Cursor()
	for _, p := range points {
		if !set.Domain().Valid(p.X) {
			return nil, errs.ErrInvalidParam
		}
		c.Add(p.X, p.Y)
	}
	c.Reset()

	return &Linear{set: set, cursor: c}, nil
}

// LinearFromSet wraps an existing set. The curve reads the set live, so later
// changes to the set are reflected in evaluations.
//
// Returns errs.ErrUninitialized for a nil or zero set and errs.ErrEmptySet for
// a set without samples.
func LinearFromSet(set *sample.Set[float64, float64]) (*Linear, error) {
	if !set.IsInitialized() {
		return nil, errs.ErrUninitialized
	}
	if set.Count() == 0 {
		return nil, errs.ErrEmptySet
	}

	return &Linear{set: set, cursor: set.Cursor()}, nil
}

// Set returns the control points of the curve.
func (l *Linear) Set() *sample.Set[float64, float64] {
	return l.set
}

// Eval returns the curve value at x.
func (l *Linear) Eval(x float64) float64 {
	return blend(l.cursor.Lookup(x))
}

// Eval01 returns the curve value at the normalized position t, where 0 is the
// first control point and 1 the last.
func (l *Linear) Eval01(t float64) float64 {
	return blend(l.cursor.Lookup01(t))
}

// Slope returns the derivative of the curve at x. It is 0 outside the control
// points and on a single-point curve. At an interior control point it is the
// slope of the segment starting there; at the last point, of the final segment.
func (l *Linear) Slope(x float64) float64 {
	r := l.cursor.Lookup(x)
	if r.OutOfBounds != sample.InBounds || r.X1 == r.X2 {
		return 0
	}

	return (r.Y2 - r.Y1) / (r.X2 - r.X1)
}

// Resample evaluates the curve at n evenly spaced positions from the first
// control point to the last, inclusive.
func (l *Linear) Resample(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{l.Eval01(0)}
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = l.Eval01(float64(i) / float64(n-1))
	}

	return out
}

func blend(r sample.Result[float64, float64]) float64 {
	switch r.Frac {
	case 0:
		return r.Y1
	case 1:
		return r.Y2
	}

	return r.Y1 + (r.Y2-r.Y1)*r.Frac
}
