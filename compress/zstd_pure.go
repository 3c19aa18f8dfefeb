//go:build !cgozstd || !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // the snapshot header carries its own checksum
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress appends the Zstandard frame of src to dst.
func (ZstdCodec) Compress(dst, src []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(src, dst), nil
}

// Decompress appends the decoded frame to dst.
func (ZstdCodec) Decompress(dst, src []byte, size int) ([]byte, error) {
	if len(src) == 0 {
		if err := checkSize("zstd", 0, size); err != nil {
			return nil, err
		}

		return dst, nil
	}

	declared, err := checkZstdFrame(src, size)
	if err != nil {
		return nil, err
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	off := len(dst)
	if declared {
		dst, _ = grow(dst, size)
	}
	out, err := decoder.DecodeAll(src, dst[:off])
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkSize("zstd", len(out)-off, size); err != nil {
		return nil, err
	}

	return out, nil
}
