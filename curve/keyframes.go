package curve

import (
	"github.com/arloliu/sampleset/sample"
)

// LerpFunc blends a and b at t in [0, 1].
type LerpFunc[V any] func(a, b V, t float64) V

// LerpFloat64 blends two floats linearly.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// Step holds a until the next keyframe is reached.
func Step[V any](a, _ V, _ float64) V {
	return a
}

// Keyframes is an animation track: values keyed by an ordered parameter and
// blended between neighbouring keys.
//
// Before the first key the track holds the first value, after the last key it
// holds the last value.
type Keyframes[P, V any] struct {
	set    *sample.Set[P, V]
	cursor *sample.Cursor[P, V]
	lerp   LerpFunc[V]
}

// NewKeyframes creates an empty track keyed by a numeric parameter.
//
// A nil lerp falls back to Step.
func NewKeyframes[P sample.Number, V any](lerp LerpFunc[V]) *Keyframes[P, V] {
	set := sample.Init[P, V](nil)

	return newKeyframes(set, lerp)
}

// NewKeyframesWithDomain creates an empty track keyed by any parameter the
// domain can order, e.g. sample.Time.
func NewKeyframesWithDomain[P, V any](domain sample.Domain[P], lerp LerpFunc[V]) (*Keyframes[P, V], error) {
	set, err := sample.NewWithDomain[P, V](domain)
	if err != nil {
		return nil, err
	}

	return newKeyframes(set, lerp), nil
}

func newKeyframes[P, V any](set *sample.Set[P, V], lerp LerpFunc[V]) *Keyframes[P, V] {
	if lerp == nil {
		lerp = Step[V]
	}

	return &Keyframes[P, V]{
		set:    set,
		cursor: set.Cursor(),
		lerp:   lerp,
	}
}

// Len returns the number of keys.
func (k *Keyframes[P, V]) Len() int {
	return k.set.Count()
}

// Key returns the key at index i in parameter order.
func (k *Keyframes[P, V]) Key(i int) (sample.Sample[P, V], bool) {
	return k.set.At(i)
}

// Set places a key at p, replacing the value of an existing key at p.
// It reports whether a new key was created.
func (k *Keyframes[P, V]) Set(p P, v V) bool {
	_, inserted := k.cursor.Add(p, v)
	return inserted
}

// Retime moves the key at index i to p, keeping its value. Keys cannot be
// moved past their neighbours; see sample.Set.Update.
func (k *Keyframes[P, V]) Retime(i int, p P) error {
	// an out-of-range i is reported by Update
	key, _ := k.set.At(i)
	_, err := k.set.Update(i, p, key.Y)

	return err
}

// Clear removes all keys, keeping the allocated storage.
func (k *Keyframes[P, V]) Clear() {
	k.set.Reset()
	k.cursor.Reset()
}

// At returns the blended value at p, or false if the track has no keys.
func (k *Keyframes[P, V]) At(p P) (V, bool) {
	if k.set.Count() == 0 {
		var zero V
		return zero, false
	}

	r := k.cursor.Lookup(p)
	switch r.Frac {
	case 0:
		return r.Y1, true
	case 1:
		return r.Y2, true
	}

	return k.lerp(r.Y1, r.Y2, r.Frac), true
}
