package snapshot

import (
	"iter"
	"slices"

	"github.com/arloliu/sampleset/format"
	"github.com/arloliu/sampleset/internal/hash"
	"github.com/arloliu/sampleset/sample"
	"github.com/arloliu/sampleset/section"
)

// Snapshot holds the sets decoded from one blob, in encoding order.
//
// The sets belong to the snapshot's owner and may be modified freely.
type Snapshot struct {
	names       []string
	sets        []*sample.Set[float64, float64]
	byID        map[uint64]int
	compression format.CompressionType
	bigEndian   bool
}

func newSnapshot(count int, header section.Header) *Snapshot {
	return &Snapshot{
		names:       make([]string, 0, count),
		sets:        make([]*sample.Set[float64, float64], 0, count),
		byID:        make(map[uint64]int, count),
		compression: header.Flag.Compression(),
		bigEndian:   header.Flag.IsBigEndian(),
	}
}

func (s *Snapshot) add(name string, id uint64, set *sample.Set[float64, float64]) {
	s.byID[id] = len(s.sets)
	s.names = append(s.names, name)
	s.sets = append(s.sets, set)
}

// Len returns the number of sets.
func (s *Snapshot) Len() int {
	return len(s.sets)
}

// Names returns the set names in encoding order.
func (s *Snapshot) Names() []string {
	return slices.Clone(s.names)
}

// Get returns the set stored under name.
func (s *Snapshot) Get(name string) (*sample.Set[float64, float64], bool) {
	i, ok := s.byID[hash.ID(name)]
	if !ok || s.names[i] != name {
		return nil, false
	}

	return s.sets[i], true
}

// GetID returns the set whose name hashes to id.
func (s *Snapshot) GetID(id uint64) (*sample.Set[float64, float64], bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	return s.sets[i], true
}

// All iterates over the sets in encoding order.
func (s *Snapshot) All() iter.Seq2[string, *sample.Set[float64, float64]] {
	return func(yield func(string, *sample.Set[float64, float64]) bool) {
		for i, name := range s.names {
			if !yield(name, s.sets[i]) {
				return
			}
		}
	}
}

// Compression returns the codec the snapshot was encoded with.
func (s *Snapshot) Compression() format.CompressionType {
	return s.compression
}

// IsBigEndian reports whether the snapshot was encoded big-endian.
func (s *Snapshot) IsBigEndian() bool {
	return s.bigEndian
}

// ID returns the identifier under which a set named name is stored.
func ID(name string) uint64 {
	return hash.ID(name)
}
