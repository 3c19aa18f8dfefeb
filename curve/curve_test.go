package curve

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/sample"
)

type pt = sample.Sample[float64, float64]

func TestLinear(t *testing.T) {
	l, err := NewLinear(pt{X: 10, Y: 100}, pt{X: 0, Y: 0}, pt{X: 20, Y: 0})
	require.NoError(t, err)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"first point", 0, 0},
		{"rising", 5, 50},
		{"peak", 10, 100},
		{"falling", 15, 50},
		{"last point", 20, 0},
		{"below holds first", -10, 0},
		{"above holds last", 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, l.Eval(tt.x), 1e-12)
		})
	}

	require.InDelta(t, 100.0, l.Eval01(0.5), 1e-12)
	require.InDelta(t, 10.0, l.Slope(5), 1e-12)
	require.InDelta(t, -10.0, l.Slope(10), 1e-12)
	require.Zero(t, l.Slope(-1))
	require.Zero(t, l.Slope(21))
	require.Equal(t, 3, l.Set().Count())
}

func TestLinear_DuplicateAndErrors(t *testing.T) {
	l, err := NewLinear(pt{X: 0, Y: 1}, pt{X: 0, Y: 2})
	require.NoError(t, err)
	require.Equal(t, 1, l.Set().Count())
	require.Equal(t, 2.0, l.Eval(-5))
	require.Equal(t, 2.0, l.Eval(5))
	require.Zero(t, l.Slope(0))

	_, err = NewLinear()
	require.ErrorIs(t, err, errs.ErrEmptySet)

	_, err = NewLinear(pt{X: math.NaN(), Y: 1})
	require.ErrorIs(t, err, errs.ErrInvalidParam)
}

func TestLinear_Resample(t *testing.T) {
	l, err := NewLinear(pt{X: 0, Y: 0}, pt{X: 4, Y: 8})
	require.NoError(t, err)

	require.Nil(t, l.Resample(0))
	require.Equal(t, []float64{0}, l.Resample(1))
	require.Equal(t, []float64{0, 2, 4, 6, 8}, l.Resample(5))
}

func TestLinearFromSet(t *testing.T) {
	_, err := LinearFromSet(nil)
	require.ErrorIs(t, err, errs.ErrUninitialized)

	set, err := sample.New[float64, float64]()
	require.NoError(t, err)

	_, err = LinearFromSet(set)
	require.ErrorIs(t, err, errs.ErrEmptySet)

	require.NoError(t, set.Append(0, 0))
	require.NoError(t, set.Append(1, 1))

	l, err := LinearFromSet(set)
	require.NoError(t, err)
	require.InDelta(t, 0.5, l.Eval(0.5), 1e-12)

	// the curve reads the set live
	_, err = set.Update(1, 2, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.25, l.Eval(0.5), 1e-12)
}

func TestKeyframes(t *testing.T) {
	k := NewKeyframes[float64, float64](LerpFloat64)

	_, ok := k.At(0)
	require.False(t, ok)

	require.True(t, k.Set(0, 0))
	require.True(t, k.Set(2, 20))
	require.True(t, k.Set(1, 5))
	require.False(t, k.Set(1, 10))
	require.Equal(t, 3, k.Len())

	for _, tt := range []struct{ p, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 5}, {1, 10}, {1.5, 15}, {2, 20}, {3, 20},
	} {
		v, ok := k.At(tt.p)
		require.True(t, ok)
		require.InDelta(t, tt.want, v, 1e-12, "p=%v", tt.p)
	}

	require.NoError(t, k.Retime(1, 1.5))
	v, _ := k.At(1.5)
	require.InDelta(t, 10.0, v, 1e-12)

	require.ErrorIs(t, k.Retime(1, 5), errs.ErrOrderingViolation)
	require.ErrorIs(t, k.Retime(9, 5), errs.ErrInvalidIndex)

	key, ok := k.Key(2)
	require.True(t, ok)
	require.Equal(t, 2.0, key.X)

	k.Clear()
	require.Equal(t, 0, k.Len())
}

func TestKeyframes_StepAndTime(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	k, err := NewKeyframesWithDomain[time.Time, string](sample.Time{}, nil)
	require.NoError(t, err)

	k.Set(t0, "intro")
	k.Set(t0.Add(30*time.Second), "verse")
	k.Set(t0.Add(90*time.Second), "chorus")

	for _, tt := range []struct {
		offset time.Duration
		want   string
	}{
		{-time.Minute, "intro"},
		{10 * time.Second, "intro"},
		{30 * time.Second, "verse"},
		{89 * time.Second, "verse"},
		{90 * time.Second, "chorus"},
		{time.Hour, "chorus"},
	} {
		v, ok := k.At(t0.Add(tt.offset))
		require.True(t, ok)
		require.Equal(t, tt.want, v, "offset=%s", tt.offset)
	}

	_, err = NewKeyframesWithDomain[time.Time, string](nil, nil)
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestArcLength(t *testing.T) {
	// 3-4-5 triangle legs: two segments of length 5
	a, err := NewArcLength([]Point{{0, 0}, {3, 4}, {6, 8}})
	require.NoError(t, err)
	require.InDelta(t, 10.0, a.Length(), 1e-12)

	require.InDelta(t, 0.5, a.ParamAt(2.5), 1e-12)
	require.InDelta(t, 1.5, a.ParamAt(7.5), 1e-12)
	require.InDelta(t, 1.0, a.ParamAt01(0.5), 1e-12)
	require.Zero(t, a.ParamAt(-1))
	require.Equal(t, 2.0, a.ParamAt(11))

	p := a.PointAt(7.5)
	require.InDelta(t, 4.5, p.X, 1e-12)
	require.InDelta(t, 6.0, p.Y, 1e-12)

	require.Equal(t, Point{0, 0}, a.PointAt01(0))
	require.Equal(t, Point{6, 8}, a.PointAt01(1))
}

func TestArcLength_UnevenSegments(t *testing.T) {
	a, err := NewArcLength([]Point{{0, 0}, {1, 0}, {1, 0}, {10, 0}})
	require.NoError(t, err)
	require.InDelta(t, 10.0, a.Length(), 1e-12)

	// constant speed: half the distance is x=5 even though the segments differ
	p := a.PointAt01(0.5)
	require.InDelta(t, 5.0, p.X, 1e-12)
	require.Zero(t, p.Y)

	p = a.PointAt(0.5)
	require.InDelta(t, 0.5, p.X, 1e-12)
}

func TestArcLength_Degenerate(t *testing.T) {
	a, err := NewArcLength([]Point{{2, 2}, {2, 2}})
	require.NoError(t, err)
	require.Zero(t, a.Length())
	require.Equal(t, Point{2, 2}, a.PointAt(5))

	_, err = NewArcLength(nil)
	require.ErrorIs(t, err, errs.ErrEmptySet)

	_, err = NewArcLength([]Point{{0, 0}, {math.Inf(1), 0}})
	require.ErrorIs(t, err, errs.ErrInvalidParam)
}
