package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/sampleset/endian"
	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/internal/pool"
)

// Float64Size is the encoded width of one column value.
const Float64Size = 8

// WriteFloat64s appends values as IEEE 754 bit patterns in the engine's byte order.
func WriteFloat64s(buf *pool.ByteBuffer, engine endian.EndianEngine, values []float64) {
	buf.Grow(len(values) * Float64Size)
	for _, v := range values {
		buf.B = engine.AppendUint64(buf.B, math.Float64bits(v))
	}
}

// ReadFloat64s fills dst from the start of data and returns the number of
// bytes consumed.
func ReadFloat64s(dst []float64, data []byte, engine endian.EndianEngine) (int, error) {
	size := len(dst) * Float64Size
	if len(data) < size {
		return 0, fmt.Errorf("%w: column needs %d bytes, have %d", errs.ErrCorruptPayload, size, len(data))
	}

	for i := range dst {
		dst[i] = math.Float64frombits(engine.Uint64(data[i*Float64Size:]))
	}

	return size, nil
}
