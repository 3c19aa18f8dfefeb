package collision

import (
	"fmt"

	"github.com/arloliu/sampleset/errs"
)

// Tracker records the sets added to a snapshot and rejects repeated names
// and distinct names that hash to the same ID.
type Tracker struct {
	byID  map[uint64]string
	names []string
	ids   []uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byID: make(map[uint64]string),
	}
}

// Track registers name under id.
//
// Parameters:
//   - name: Set name
//   - id: Hash of name
//
// Returns:
//   - error: errs.ErrDuplicateSet if name was already tracked,
//     errs.ErrHashCollision if a different name already owns id
func (t *Tracker) Track(name string, id uint64) error {
	if existing, exists := t.byID[id]; exists {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateSet, name)
		}

		return fmt.Errorf("%w: %q and %q share id %#016x", errs.ErrHashCollision, existing, name, id)
	}

	t.byID[id] = name
	t.names = append(t.names, name)
	t.ids = append(t.ids, id)

	return nil
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.names
}

// IDs returns the tracked IDs in insertion order.
func (t *Tracker) IDs() []uint64 {
	return t.ids
}

// Count returns the number of tracked sets.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset forgets every tracked set.
func (t *Tracker) Reset() {
	clear(t.byID)
	t.names = t.names[:0]
	t.ids = t.ids[:0]
}
