package snapshot

import (
	"fmt"

	"github.com/arloliu/sampleset/compress"
	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/collision"
	"github.com/arloliu/sampleset/internal/encoding"
	"github.com/arloliu/sampleset/internal/hash"
	"github.com/arloliu/sampleset/internal/pool"
	"github.com/arloliu/sampleset/sample"
	"github.com/arloliu/sampleset/section"
)

// Decode parses a snapshot produced by Encoder.Finish.
//
// The header is validated first, then the payload is decompressed and its
// checksum verified before any set is rebuilt. data is not retained.
//
// Parameters:
//   - data: The encoded snapshot
//
// Returns:
//   - *Snapshot: The decoded sets
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic,
//     errs.ErrInvalidCompression, errs.ErrChecksumMismatch or errs.ErrCorruptPayload
func Decode(data []byte) (*Snapshot, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompression, err)
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	payload, err := codec.Decompress(buf.B[:0], data[section.HeaderSize:], int(header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptPayload, err)
	}
	buf.B = payload

	if hash.Checksum(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return decodePayload(payload, header)
}

func decodePayload(payload []byte, header section.Header) (*Snapshot, error) {
	engine := header.Flag.GetEndianEngine()
	count := int(header.SetCount)

	if count == 0 {
		return nil, fmt.Errorf("%w: no sets", errs.ErrCorruptPayload)
	}
	if count > len(payload)/section.IndexEntrySize {
		return nil, fmt.Errorf("%w: %d index entries do not fit %d bytes", errs.ErrCorruptPayload, count, len(payload))
	}

	entries := make([]section.IndexEntry, count)
	offset := 0
	for i := range entries {
		entry, err := section.ParseIndexEntry(payload[offset:], engine)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
		offset += section.IndexEntrySize
	}

	names, n, err := encoding.ReadNames(payload[offset:], count)
	if err != nil {
		return nil, err
	}
	offset += n

	tracker := collision.NewTracker()
	snap := newSnapshot(count, header)

	for i, entry := range entries {
		if hash.ID(names[i]) != entry.ID {
			return nil, fmt.Errorf("%w: id of set %q does not match its name", errs.ErrCorruptPayload, names[i])
		}
		if err := tracker.Track(names[i], entry.ID); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrCorruptPayload, err)
		}

		set, n, err := decodeSet(payload[offset:], int(entry.Count), header)
		if err != nil {
			return nil, fmt.Errorf("set %q: %w", names[i], err)
		}
		offset += n

		snap.add(names[i], entry.ID, set)
	}

	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrCorruptPayload, len(payload)-offset)
	}

	return snap, nil
}

func decodeSet(data []byte, count int, header section.Header) (*sample.Set[float64, float64], int, error) {
	engine := header.Flag.GetEndianEngine()

	if count > len(data)/(2*encoding.Float64Size) {
		return nil, 0, fmt.Errorf("%w: %d samples do not fit %d bytes", errs.ErrCorruptPayload, count, len(data))
	}

	xs, releaseX := pool.GetFloat64Slice(count)
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(count)
	defer releaseY()

	nx, err := encoding.ReadFloat64s(xs, data, engine)
	if err != nil {
		return nil, 0, err
	}
	ny, err := encoding.ReadFloat64s(ys, data[nx:], engine)
	if err != nil {
		return nil, 0, err
	}

	set, err := sample.New[float64, float64](sample.WithCapacity(count))
	if err != nil {
		return nil, 0, err
	}
	for i := range xs {
		if err := set.Append(xs[i], ys[i]); err != nil {
			return nil, 0, fmt.Errorf("%w: sample %d: %w", errs.ErrCorruptPayload, i, err)
		}
	}

	return set, nx + ny, nil
}
