package snapshot

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/sampleset/compress"
	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/collision"
	"github.com/arloliu/sampleset/internal/encoding"
	"github.com/arloliu/sampleset/internal/hash"
	"github.com/arloliu/sampleset/internal/options"
	"github.com/arloliu/sampleset/internal/pool"
	"github.com/arloliu/sampleset/sample"
	"github.com/arloliu/sampleset/section"
)

// columns is a copy of one set taken at Add time.
type columns struct {
	xs, ys  []float64
	release []func()
}

// Encoder collects named sets and writes them as one snapshot.
//
// Sets are copied when added, so they may be modified or reused afterwards.
// An Encoder is not safe for concurrent use. After Finish it is empty and can
// encode another snapshot with the same options.
type Encoder struct {
	cfg     encoderConfig
	codec   compress.Codec
	tracker *collision.Tracker
	sets    []columns
}

// NewEncoder creates a snapshot encoder.
//
// Parameters:
//   - opts: Optional configuration (WithBigEndian, WithCompression, WithLogger, ...)
//
// Returns:
//   - *Encoder: The encoder
//   - error: An error if an option is invalid
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompression, err)
	}

	return &Encoder{
		cfg:     cfg,
		codec:   codec,
		tracker: collision.NewTracker(),
	}, nil
}

// Add copies set into the snapshot under name.
//
// Parameters:
//   - name: Set name, 1 to 255 bytes, unique within the snapshot
//   - set: An initialized set; it may be empty
//
// Returns:
//   - error: errs.ErrInvalidSetName, errs.ErrDuplicateSet, errs.ErrHashCollision,
//     errs.ErrUninitialized or errs.ErrTooManySamples
func (e *Encoder) Add(name string, set *sample.Set[float64, float64]) error {
	if err := encoding.ValidateName(name); err != nil {
		return err
	}
	if !set.IsInitialized() {
		return fmt.Errorf("%w: set %q", errs.ErrUninitialized, name)
	}

	n := set.Count()
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: set %q has %d samples", errs.ErrTooManySamples, name, n)
	}

	if err := e.tracker.Track(name, hash.ID(name)); err != nil {
		return err
	}

	xs, releaseX := pool.GetFloat64Slice(n)
	ys, releaseY := pool.GetFloat64Slice(n)
	for i, s := range set.All() {
		xs[i] = s.X
		ys[i] = s.Y
	}

	e.sets = append(e.sets, columns{xs: xs, ys: ys, release: []func(){releaseX, releaseY}})

	return nil
}

// Len returns the number of sets added since the last Finish.
func (e *Encoder) Len() int {
	return e.tracker.Count()
}

// Finish encodes the added sets and resets the encoder.
//
// Returns:
//   - []byte: The snapshot
//   - error: errs.ErrNoSets if nothing was added, errs.ErrTooManySamples if
//     the payload exceeds 4 GiB, or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	defer e.Reset()

	if e.tracker.Count() == 0 {
		return nil, errs.ErrNoSets
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	if err := e.writePayload(buf); err != nil {
		return nil, err
	}

	payload := buf.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrTooManySamples, len(payload))
	}

	header := section.NewHeader()
	header.Flag.SetEndianEngine(e.cfg.engine)
	header.Flag.SetCompression(e.codec.Type())
	header.SetCount = uint32(e.tracker.Count()) //nolint:gosec
	header.PayloadSize = uint32(len(payload))   //nolint:gosec
	header.Checksum = hash.Checksum(payload)

	out := header.AppendTo(make([]byte, 0, section.HeaderSize+len(payload)/2))
	out, err := e.codec.Compress(out, payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress payload: %w", err)
	}

	e.cfg.logger.Debug("snapshot encoded",
		zap.Int("sets", e.tracker.Count()),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("snapshot_bytes", len(out)),
		zap.Stringer("compression", e.codec.Type()),
		zap.Bool("big_endian", header.Flag.IsBigEndian()),
	)

	return out, nil
}

func (e *Encoder) writePayload(buf *pool.ByteBuffer) error {
	engine := e.cfg.engine

	size := len(e.sets) * section.IndexEntrySize
	for _, c := range e.sets {
		size += 2 * len(c.xs) * encoding.Float64Size
	}
	buf.Grow(size)

	for i, id := range e.tracker.IDs() {
		entry := section.IndexEntry{ID: id, Count: uint32(len(e.sets[i].xs))} //nolint:gosec
		buf.B = entry.AppendTo(buf.B, engine)
	}

	if err := encoding.WriteNames(buf, e.tracker.Names()); err != nil {
		return err
	}

	for _, c := range e.sets {
		encoding.WriteFloat64s(buf, engine, c.xs)
		encoding.WriteFloat64s(buf, engine, c.ys)
	}

	return nil
}

// Reset discards the added sets.
func (e *Encoder) Reset() {
	for _, c := range e.sets {
		for _, release := range c.release {
			release()
		}
	}
	clear(e.sets)
	e.sets = e.sets[:0]
	e.tracker.Reset()
}
