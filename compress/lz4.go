package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/sampleset/format"
	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxRatio bounds how far one block byte can expand: a match length byte
// of 0xFF extends the match by 255 bytes.
const lz4MaxRatio = 255

// LZ4Codec implements LZ4 block compression.
//
// Blocks carry no length of their own, so decompression relies on the size
// recorded in the snapshot header.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Type returns format.CompressionLZ4.
func (LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress appends the LZ4 block of src to dst.
//
// The destination is sized to lz4.CompressBlockBound so incompressible input
// is still emitted as a literal-only block.
func (LZ4Codec) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	dst, off := grow(dst, lz4.CompressBlockBound(len(src)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst[off:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:off+n], nil
}

// Decompress appends the decoded block to dst.
func (LZ4Codec) Decompress(dst, src []byte, size int) ([]byte, error) {
	if len(src) == 0 {
		if err := checkSize("lz4", 0, size); err != nil {
			return nil, err
		}

		return dst, nil
	}

	if size > len(src)*lz4MaxRatio {
		return nil, fmt.Errorf("lz4: %d byte block cannot expand to %d bytes", len(src), size)
	}

	dst, off := grow(dst, size)
	n, err := lz4.UncompressBlock(src, dst[off:])
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if err := checkSize("lz4", n, size); err != nil {
		return nil, err
	}

	return dst, nil
}
