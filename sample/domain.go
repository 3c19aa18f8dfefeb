package sample

import (
	"math"
	"time"
	"unsafe"
)

// Number is the set of built-in numeric types usable as sample parameters.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Domain orders sample parameters of type P and measures positions between them.
//
// Less must be a strict total order over every value for which Valid reports
// true. Fraction and Lerp are only called with lo < hi.
type Domain[P any] interface {
	// Less reports whether a orders strictly before b.
	Less(a, b P) bool
	// Valid reports whether x can be ordered at all.
	Valid(x P) bool
	// Fraction returns the relative position of x between lo and hi, where
	// x == lo maps to 0 and x == hi maps to 1.
	Fraction(x, lo, hi P) float64
	// Lerp returns the parameter at relative position t between lo and hi.
	Lerp(lo, hi P, t float64) P
}

// Numeric is the Domain of the built-in integer and floating-point types.
//
// NaN and the infinities are rejected by Valid. Lerp rounds to the nearest
// value for integer types and saturates at the bounds of P.
type Numeric[P Number] struct{}

var _ Domain[float64] = Numeric[float64]{}

func (Numeric[P]) Less(a, b P) bool {
	return a < b
}

func (Numeric[P]) Valid(x P) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (Numeric[P]) Fraction(x, lo, hi P) float64 {
	fx, flo, fhi := float64(x), float64(lo), float64(hi)
	span := fhi - flo
	if math.IsInf(span, 0) {
		// both ends are finite, so halving them keeps the span finite
		fx, flo, fhi = fx/2, flo/2, fhi/2
		span = fhi - flo
	}

	return min(max((fx-flo)/span, 0), 1)
}

func (Numeric[P]) Lerp(lo, hi P, t float64) P {
	// lo*(1-t) + hi*t hits both endpoints exactly at t == 0 and t == 1
	v := float64(lo)*(1-t) + float64(hi)*t
	if t >= 0 && t <= 1 {
		v = min(max(v, float64(lo)), float64(hi))
	}
	if !isInteger[P]() {
		return P(v)
	}

	return saturate[P](math.Round(v))
}

func isInteger[P Number]() bool {
	half := 0.5
	return P(half) == 0
}

// saturate converts v to the integer type P, pinning values outside P's
// range to its minimum or maximum.
func saturate[P Number](v float64) P {
	var zero P
	bits := 8 * uint(unsafe.Sizeof(zero))

	one := P(1)
	if zero-one < zero {
		hi := int64(math.MaxInt64) >> (64 - bits)
		lo := int64(math.MinInt64) >> (64 - bits)
		// float64(hi) rounds up to a power of two for 64-bit P
		switch {
		case v >= float64(hi):
			return P(hi)
		case v <= float64(lo):
			return P(lo)
		}

		return P(int64(v))
	}

	hi := uint64(math.MaxUint64) >> (64 - bits)
	switch {
	case v >= float64(hi):
		return P(hi)
	case v <= 0:
		return zero
	}

	return P(uint64(v))
}

// Time is the Domain of time.Time parameters, for keyframe timelines.
//
// Positions are measured in nanoseconds, split into whole seconds and a
// remainder so spans longer than a time.Duration can hold still measure
// correctly. Lerp rounds to the nearest nanosecond and keeps lo's location.
type Time struct{}

var _ Domain[time.Time] = Time{}

func (Time) Less(a, b time.Time) bool {
	return a.Before(b)
}

func (Time) Valid(time.Time) bool {
	return true
}

func (Time) Fraction(x, lo, hi time.Time) float64 {
	return min(max(nanosBetween(lo, x)/nanosBetween(lo, hi), 0), 1)
}

func (Time) Lerp(lo, hi time.Time, t float64) time.Time {
	off := float64(hi.Unix()-lo.Unix()) * t
	secs := math.Floor(off)
	nsec := math.Round((off-secs)*1e9 + float64(hi.Nanosecond()-lo.Nanosecond())*t)

	v := time.Unix(lo.Unix()+int64(secs), int64(lo.Nanosecond())+int64(nsec)).In(lo.Location())
	if t >= 0 && t <= 1 {
		if v.Before(lo) {
			return lo
		}
		if v.After(hi) {
			return hi
		}
	}

	return v
}

// nanosBetween returns b - a in nanoseconds without going through
// time.Duration, which saturates after about 292 years.
func nanosBetween(a, b time.Time) float64 {
	secs := b.Unix() - a.Unix()
	nsec := b.Nanosecond() - a.Nanosecond()

	return float64(secs)*1e9 + float64(nsec)
}

// FuncDomain builds a Domain from plain functions.
//
// LessFunc, FractionFunc and LerpFunc are required. A nil ValidFunc accepts
// every value.
type FuncDomain[P any] struct {
	LessFunc     func(a, b P) bool
	ValidFunc    func(x P) bool
	FractionFunc func(x, lo, hi P) float64
	LerpFunc     func(lo, hi P, t float64) P
}

var _ Domain[int] = FuncDomain[int]{}

func (d FuncDomain[P]) Less(a, b P) bool {
	return d.LessFunc(a, b)
}

func (d FuncDomain[P]) Valid(x P) bool {
	if d.ValidFunc == nil {
		return true
	}

	return d.ValidFunc(x)
}

func (d FuncDomain[P]) Fraction(x, lo, hi P) float64 {
	return d.FractionFunc(x, lo, hi)
}

func (d FuncDomain[P]) Lerp(lo, hi P, t float64) P {
	return d.LerpFunc(lo, hi, t)
}

func (d FuncDomain[P]) complete() bool {
	return d.LessFunc != nil && d.FractionFunc != nil && d.LerpFunc != nil
}
