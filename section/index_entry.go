package section

import (
	"fmt"

	"github.com/arloliu/sampleset/endian"
	"github.com/arloliu/sampleset/errs"
)

// IndexEntry locates one set in the snapshot payload. Sets are stored in
// index order, so the columns of entry i follow those of entry i-1.
type IndexEntry struct {
	// ID is the xxHash64 of the set name.
	ID uint64
	// Count is the number of samples in the set.
	Count uint32
}

// AppendTo appends the encoded entry to dst.
func (e IndexEntry) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint64(dst, e.ID)
	return engine.AppendUint32(dst, e.Count)
}

// ParseIndexEntry decodes the entry at the start of data.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, fmt.Errorf("%w: index entry needs %d bytes, have %d", errs.ErrCorruptPayload, IndexEntrySize, len(data))
	}

	return IndexEntry{
		ID:    engine.Uint64(data[0:8]),
		Count: engine.Uint32(data[8:12]),
	}, nil
}
