package sample

import (
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sampleset/errs"
)

// ==============================================================================
// Helper Functions
// ==============================================================================

func label(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func newFloatSet(t *testing.T, xs ...float64) *Set[float64, string] {
	t.Helper()

	s, err := New[float64, string]()
	require.NoError(t, err)

	for _, x := range xs {
		_, inserted := s.Add(x, label(x), NoHint)
		require.True(t, inserted, "x=%v", x)
	}

	return s
}

func xsOf[P, V any](s *Set[P, V]) []P {
	xs := make([]P, 0, s.Count())
	for _, smp := range s.All() {
		xs = append(xs, smp.X)
	}

	return xs
}

func requireOrdered(t *testing.T, s *Set[float64, string]) {
	t.Helper()

	xs := xsOf(s)
	for i := 1; i < len(xs); i++ {
		require.Less(t, xs[i-1], xs[i], "samples %d and %d out of order", i-1, i)
	}
}

func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)

		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()

	fn()
}

// ==============================================================================
// Construction
// ==============================================================================

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := New[float64, string]()
		require.NoError(t, err)
		require.True(t, s.IsInitialized())
		require.Equal(t, 0, s.Count())
		require.Equal(t, DefaultLinearThreshold, s.linearThreshold)
	})

	t.Run("with capacity", func(t *testing.T) {
		s, err := New[int, int](WithCapacity(32))
		require.NoError(t, err)
		require.Equal(t, 32, s.Cap())
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := New[float64, int](WithCapacity(-1))
		require.ErrorIs(t, err, errs.ErrInvalidOption)

		_, err = New[float64, int](WithLinearThreshold(-2))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
		require.ErrorContains(t, err, "WithLinearThreshold: ")
	})

	t.Run("nil domain", func(t *testing.T) {
		_, err := NewWithDomain[float64, int](nil)
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})

	t.Run("incomplete func domain", func(t *testing.T) {
		_, err := NewWithDomain[int, int](FuncDomain[int]{LessFunc: func(a, b int) bool { return a < b }})
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})
}

func TestInit(t *testing.T) {
	t.Run("nil allocates", func(t *testing.T) {
		s := Init[float64, string](nil)
		require.True(t, s.IsInitialized())
		require.Equal(t, 0, s.Count())

		s.Add(1, "a", NoHint)
		require.Equal(t, 1, s.Count())
	})

	t.Run("zero set is initialized in place", func(t *testing.T) {
		var s Set[float64, string]
		require.False(t, s.IsInitialized())

		got := Init(&s)
		require.Same(t, &s, got)
		require.True(t, s.IsInitialized())
		require.Equal(t, 0, s.Count())
	})

	t.Run("existing set keeps backing array", func(t *testing.T) {
		s := newFloatSet(t, 0, 1, 2, 3, 4, 5, 6, 7)
		capBefore := s.Cap()

		got := Init(s)
		require.Same(t, s, got)
		require.Equal(t, 0, s.Count())
		require.Equal(t, capBefore, s.Cap())

		for i := range 8 {
			s.Add(float64(8-i), "again", NoHint)
		}
		require.Equal(t, 8, s.Count())
		require.Equal(t, capBefore, s.Cap(), "refill must reuse the retained slots")
		requireOrdered(t, s)
	})
}

func TestUninitialized(t *testing.T) {
	var s Set[float64, int]

	requirePanicIs(t, errs.ErrUninitialized, func() { s.Count() })
	requirePanicIs(t, errs.ErrUninitialized, func() { s.Add(1, 1, NoHint) })
	requirePanicIs(t, errs.ErrUninitialized, func() { s.Lookup(1, NoHint) })
	requirePanicIs(t, errs.ErrUninitialized, func() { s.Reset() })
	requirePanicIs(t, errs.ErrUninitialized, func() { _ = s.Append(1, 1) })
	requirePanicIs(t, errs.ErrUninitialized, func() { _, _ = s.Update(0, 1, 1) })

	var nilSet *Set[float64, int]
	require.False(t, nilSet.IsInitialized())
	requirePanicIs(t, errs.ErrUninitialized, func() { nilSet.Count() })
	require.Equal(t, "Set{uninitialized}", s.String())
}

// ==============================================================================
// Add
// ==============================================================================

func TestAdd(t *testing.T) {
	t.Run("exact match updates in place", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		idx, inserted := s.Add(10, "new", NoHint)
		require.False(t, inserted)
		require.Equal(t, 1, idx)
		require.Equal(t, 3, s.Count())

		smp, ok := s.At(1)
		require.True(t, ok)
		require.Equal(t, Sample[float64, string]{X: 10, Y: "new"}, smp)
	})

	t.Run("exact match on first and last", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		idx, inserted := s.Add(0, "first", NoHint)
		require.False(t, inserted)
		require.Equal(t, 0, idx)

		idx, inserted = s.Add(20, "last", NoHint)
		require.False(t, inserted)
		require.Equal(t, 2, idx)

		require.Equal(t, []Sample[float64, string]{{0, "first"}, {10, "10"}, {20, "last"}}, s.Samples())
	})

	t.Run("interior insert", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		idx, inserted := s.Add(15, "15", NoHint)
		require.True(t, inserted)
		require.Equal(t, 2, idx)
		require.Equal(t, 4, s.Count())
		require.Equal(t, []float64{0, 10, 15, 20}, xsOf(s))
	})

	t.Run("prepend and append", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		idx, inserted := s.Add(-5, "-5", NoHint)
		require.True(t, inserted)
		require.Equal(t, 0, idx)

		idx, inserted = s.Add(25, "25", NoHint)
		require.True(t, inserted)
		require.Equal(t, 4, idx)

		require.Equal(t, []float64{-5, 0, 10, 20, 25}, xsOf(s))
	})

	t.Run("single sample exact match", func(t *testing.T) {
		s := newFloatSet(t, 5)

		idx, inserted := s.Add(5, "five", NoHint)
		require.False(t, inserted)
		require.Equal(t, 0, idx)
		require.Equal(t, 1, s.Count())
	})

	t.Run("inserts reuse spare capacity", func(t *testing.T) {
		s, err := New[float64, string](WithCapacity(8))
		require.NoError(t, err)

		for _, x := range []float64{40, 10, 30, 0, 20, 35, 5, 15} {
			s.Add(x, label(x), NoHint)
		}
		require.Equal(t, 8, s.Count())
		require.Equal(t, 8, s.Cap())
		requireOrdered(t, s)
	})

	t.Run("hint does not change placement", func(t *testing.T) {
		for hint := -1; hint < 12; hint++ {
			s := newFloatSet(t, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
			idx, inserted := s.Add(7.5, "x", hint)
			require.True(t, inserted)
			require.Equal(t, 8, idx, "hint=%d", hint)
		}
	})

	t.Run("NaN panics", func(t *testing.T) {
		s := newFloatSet(t, 0, 10)
		requirePanicIs(t, errs.ErrInvalidParam, func() { s.Add(math.NaN(), "nan", NoHint) })
		require.Equal(t, 2, s.Count())
	})
}

func TestAddUpdate_OrderingInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := range 50 {
		s, err := New[float64, string](WithLinearThreshold(round % 7))
		require.NoError(t, err)

		want := make(map[float64]string)
		for i := range 300 {
			// small integer grid so duplicates and ordering clashes are frequent
			x := float64(rng.IntN(120) - 60)
			y := strconv.Itoa(i)

			if s.Count() > 0 && rng.IntN(3) == 0 {
				index := rng.IntN(s.Count()+2) - 1
				before := s.Samples()

				old, err := s.Update(index, x, y)
				if err != nil {
					require.Equal(t, before, s.Samples(), "failed update changed the set")
					continue
				}

				require.Equal(t, before[index], old)
				delete(want, old.X)
				want[x] = y
			} else {
				hint := rng.IntN(s.Count()+4) - 2

				_, inserted := s.Add(x, y, hint)
				_, existed := want[x]
				require.Equal(t, !existed, inserted)
				want[x] = y
			}

			requireOrdered(t, s)
			require.Equal(t, len(want), s.Count())
		}

		keys := make([]float64, 0, len(want))
		for k := range want {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		require.Equal(t, keys, xsOf(s))

		for _, smp := range s.All() {
			require.Equal(t, want[smp.X], smp.Y)
		}
	}
}

// ==============================================================================
// Append / Update / SetEntry
// ==============================================================================

func TestAppend(t *testing.T) {
	s := newFloatSet(t)

	require.NoError(t, s.Append(1, "1"))
	require.NoError(t, s.Append(2, "2"))
	require.ErrorIs(t, s.Append(2, "dup"), errs.ErrOrderingViolation)
	require.ErrorIs(t, s.Append(0, "back"), errs.ErrOrderingViolation)
	require.ErrorIs(t, s.Append(math.NaN(), "nan"), errs.ErrInvalidParam)
	require.Equal(t, []float64{1, 2}, xsOf(s))
}

func TestUpdate(t *testing.T) {
	t.Run("rejects move past neighbour", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)
		before := s.Samples()

		_, err := s.Update(1, 25, "moved")
		require.ErrorIs(t, err, errs.ErrOrderingViolation)
		require.Equal(t, before, s.Samples())
	})

	t.Run("accepts move within neighbours", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		old, err := s.Update(1, 12, "twelve")
		require.NoError(t, err)
		require.Equal(t, Sample[float64, string]{X: 10, Y: "10"}, old)
		require.Equal(t, []Sample[float64, string]{{0, "0"}, {12, "twelve"}, {20, "20"}}, s.Samples())
	})

	t.Run("neighbour equality is a violation", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		_, err := s.Update(1, 20, "y")
		require.ErrorIs(t, err, errs.ErrOrderingViolation)

		_, err = s.Update(1, 0, "y")
		require.ErrorIs(t, err, errs.ErrOrderingViolation)
	})

	t.Run("ends are unbounded outward", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		_, err := s.Update(0, -1e9, "low")
		require.NoError(t, err)

		_, err = s.Update(2, 1e9, "high")
		require.NoError(t, err)
		require.Equal(t, []float64{-1e9, 10, 1e9}, xsOf(s))
	})

	t.Run("single sample moves freely", func(t *testing.T) {
		s := newFloatSet(t, 5)

		old, err := s.Update(0, 500, "y")
		require.NoError(t, err)
		require.Equal(t, 5.0, old.X)
	})

	t.Run("invalid index", func(t *testing.T) {
		s := newFloatSet(t, 0, 10, 20)

		_, err := s.Update(3, 30, "y")
		require.ErrorIs(t, err, errs.ErrInvalidIndex)

		_, err = s.Update(-1, -10, "y")
		require.ErrorIs(t, err, errs.ErrInvalidIndex)

		empty := newFloatSet(t)
		_, err = empty.Update(0, 1, "y")
		require.ErrorIs(t, err, errs.ErrInvalidIndex)
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		s := newFloatSet(t, 5)

		_, err := s.Update(0, math.NaN(), "y")
		require.ErrorIs(t, err, errs.ErrInvalidParam)
		require.Equal(t, []float64{5}, xsOf(s))
	})
}

func TestSetEntry(t *testing.T) {
	s := newFloatSet(t, 0, 10, 20)

	old, err := s.SetEntry(2, "twenty")
	require.NoError(t, err)
	require.Equal(t, "20", old)

	smp, _ := s.At(2)
	require.Equal(t, Sample[float64, string]{X: 20, Y: "twenty"}, smp)

	_, err = s.SetEntry(3, "nope")
	require.ErrorIs(t, err, errs.ErrInvalidIndex)
}

// ==============================================================================
// Accessors
// ==============================================================================

func TestAccessors(t *testing.T) {
	s := newFloatSet(t, 3, 1, 2)

	first, ok := s.First()
	require.True(t, ok)
	require.Equal(t, 1.0, first.X)

	last, ok := s.Last()
	require.True(t, ok)
	require.Equal(t, 3.0, last.X)

	_, ok = s.At(3)
	require.False(t, ok)

	empty := newFloatSet(t)
	_, ok = empty.First()
	require.False(t, ok)
	_, ok = empty.Last()
	require.False(t, ok)

	t.Run("all stops early", func(t *testing.T) {
		var seen []int
		for i := range s.All() {
			seen = append(seen, i)
			if i == 1 {
				break
			}
		}
		require.Equal(t, []int{0, 1}, seen)
	})

	t.Run("samples is a copy", func(t *testing.T) {
		cp := s.Samples()
		cp[0].Y = "changed"

		smp, _ := s.At(0)
		require.Equal(t, "1", smp.Y)
	})

	t.Run("clone is independent", func(t *testing.T) {
		c := s.Clone()
		c.Add(1.5, "1.5", NoHint)

		require.Equal(t, 4, c.Count())
		require.Equal(t, 3, s.Count())
		require.Equal(t, s.Domain(), c.Domain())
	})

	sized, err := New[float64, string](WithCapacity(4))
	require.NoError(t, err)
	sized.Add(1, "1", NoHint)
	require.Equal(t, "Set{Count: 1, Cap: 4}", sized.String())
}

func TestReset_ClearsPayloads(t *testing.T) {
	s, err := New[int, *int](WithCapacity(4))
	require.NoError(t, err)

	v := 42
	s.Add(1, &v, NoHint)
	s.Add(2, &v, NoHint)

	s.Reset()
	require.Equal(t, 0, s.Count())
	require.Equal(t, 4, s.Cap())

	backing := s.samples[:2]
	require.Nil(t, backing[0].Y)
	require.Nil(t, backing[1].Y)
}
