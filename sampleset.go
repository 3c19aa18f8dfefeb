// Package sampleset provides ordered sample sets: collections of (x, y) pairs
// kept strictly increasing in x, with fast lookup of the pair enclosing any
// query parameter.
//
// The lookup engine lives in the sample package. A lookup resolves x to a bin
// (the two neighbouring samples), the fractional position of x inside the bin
// and an out-of-bounds indicator. Values are never interpolated by the
// engine; callers blend Y1 and Y2 as their payload type requires.
//
// # Basic Usage
//
//	set, _ := sampleset.NewFloatSet()
//	set.Add(0, 0, sample.NoHint)
//	set.Add(10, 100, sample.NoHint)
//	set.Add(20, 50, sample.NoHint)
//
//	r := set.Lookup(15, sample.NoHint)
//	y := r.Y1 + (r.Y2-r.Y1)*r.Frac // 75
//
// Keyframe timelines order samples by time:
//
//	tl, _ := sampleset.NewTimeline[string]()
//	tl.Add(start, "intro", sample.NoHint)
//
// # Package Structure
//
//   - sample: the Set type, its search and mutation operations
//   - curve: piecewise-linear curves, keyframe tracks and arc-length tables built on Set
//   - snapshot: compact binary encoding of named float sets
//   - store: a YAML directory store of named float sets
//
// This package holds convenience wrappers for the common cases.
package sampleset

import (
	"maps"
	"slices"
	"time"

	"github.com/arloliu/sampleset/format"
	"github.com/arloliu/sampleset/internal/hash"
	"github.com/arloliu/sampleset/sample"
	"github.com/arloliu/sampleset/snapshot"
)

var defaultSnapshotOptions = []snapshot.EncoderOption{
	snapshot.WithLittleEndian(),
	snapshot.WithCompression(format.CompressionZstd),
}

// NewFloatSet creates an empty set with float64 parameters and payloads.
//
// Parameters:
//   - opts: Optional set configuration (sample.WithCapacity, sample.WithLinearThreshold)
//
// Returns:
//   - *sample.Set[float64, float64]: The new set
//   - error: An error if an option is invalid
func NewFloatSet(opts ...sample.Option) (*sample.Set[float64, float64], error) {
	return sample.New[float64, float64](opts...)
}

// NewTimeline creates an empty set ordered by time.Time, suited to keyframes.
// Lookup fractions are computed on the nanosecond offset between samples.
func NewTimeline[V any](opts ...sample.Option) (*sample.Set[time.Time, V], error) {
	return sample.NewWithDomain[time.Time, V](sample.Time{}, opts...)
}

// EncodeSnapshot encodes sets into one snapshot, in name order.
//
// Without options the snapshot is little-endian and Zstd compressed; opts
// are applied after those defaults.
//
// Parameters:
//   - sets: Sets keyed by name
//   - opts: Optional encoder configuration
//
// Returns:
//   - []byte: The snapshot
//   - error: errs.ErrNoSets for an empty map, or any error of snapshot.Encoder.Add
func EncodeSnapshot(sets map[string]*sample.Set[float64, float64], opts ...snapshot.EncoderOption) ([]byte, error) {
	enc, err := snapshot.NewEncoder(append(slices.Clone(defaultSnapshotOptions), opts...)...)
	if err != nil {
		return nil, err
	}

	for _, name := range slices.Sorted(maps.Keys(sets)) {
		if err := enc.Add(name, sets[name]); err != nil {
			return nil, err
		}
	}

	return enc.Finish()
}

// DecodeSnapshot decodes a snapshot produced by EncodeSnapshot or snapshot.Encoder.
func DecodeSnapshot(data []byte) (*snapshot.Snapshot, error) {
	return snapshot.Decode(data)
}

// SetID returns the 64-bit identifier of a set name, as used by
// snapshot.Snapshot.GetID.
func SetID(name string) uint64 {
	return hash.ID(name)
}
