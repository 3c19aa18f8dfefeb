package curve

import (
	"math"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/sample"
)

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Lerp returns the point at t between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// ArcLength parametrizes a polyline by travelled distance.
//
// Repeated consecutive vertices are collapsed into one. The polyline parameter
// u then runs from 0 at the first vertex to one less than the number of
// distinct vertices at the last, one unit per segment regardless of its
// length. The table maps cumulative distance to u so a path can be walked at
// constant speed.
type ArcLength struct {
	points []Point
	table  *sample.Set[float64, float64] // distance -> u
	cursor *sample.Cursor[float64, float64]
}

// NewArcLength builds the arc-length table of a polyline.
//
// A polyline with a single distinct vertex has length 0.
//
// Parameters:
//   - points: Polyline vertices (at least one); the slice is not retained
//
// Returns:
//   - *ArcLength: The parametrization
//   - error: errs.ErrEmptySet if points is empty, errs.ErrInvalidParam if a
//     coordinate is NaN or infinite
func NewArcLength(points []Point) (*ArcLength, error) {
	if len(points) == 0 {
		return nil, errs.ErrEmptySet
	}

	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, errs.ErrInvalidParam
		}
	}

	pts := make([]Point, 0, len(points))
	pts = append(pts, points[0])
	for _, p := range points[1:] {
		if p != pts[len(pts)-1] {
			pts = append(pts, p)
		}
	}

	table, err := sample.New[float64, float64](sample.WithCapacity(len(pts)))
	if err != nil {
		return nil, err
	}

	dist := 0.0
	if err := table.Append(dist, 0); err != nil {
		return nil, err
	}
	for i := 1; i < len(pts); i++ {
		dist += pts[i-1].Dist(pts[i])
		if err := table.Append(dist, float64(i)); err != nil {
			return nil, err
		}
	}

	return &ArcLength{
		points: pts,
		table:  table,
		cursor: table.Cursor(),
	}, nil
}

// Length returns the total length of the polyline.
func (a *ArcLength) Length() float64 {
	last, _ := a.table.Last()
	return last.X
}

// ParamAt returns the polyline parameter u reached after travelling dist from
// the first vertex. dist is clamped to [0, Length()].
func (a *ArcLength) ParamAt(dist float64) float64 {
	return blend(a.cursor.Lookup(dist))
}

// ParamAt01 is ParamAt with dist given as a fraction of Length().
func (a *ArcLength) ParamAt01(s float64) float64 {
	return blend(a.cursor.Lookup01(s))
}

// PointAt returns the position reached after travelling dist.
func (a *ArcLength) PointAt(dist float64) Point {
	return a.pointAtParam(a.ParamAt(dist))
}

// PointAt01 returns the position reached after travelling the fraction s of
// the total length.
func (a *ArcLength) PointAt01(s float64) Point {
	return a.pointAtParam(a.ParamAt01(s))
}

func (a *ArcLength) pointAtParam(u float64) Point {
	last := len(a.points) - 1
	if u <= 0 {
		return a.points[0]
	}
	if u >= float64(last) {
		return a.points[last]
	}

	seg := int(u)

	return a.points[seg].Lerp(a.points[seg+1], u-float64(seg))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
