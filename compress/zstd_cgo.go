//go:build cgozstd && cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const zstdCgoLevel = 3

// Compress appends the Zstandard frame of src to dst.
func (ZstdCodec) Compress(dst, src []byte) ([]byte, error) {
	return gozstd.CompressLevel(dst, src, zstdCgoLevel), nil
}

// Decompress appends the decoded frame to dst.
func (ZstdCodec) Decompress(dst, src []byte, size int) ([]byte, error) {
	if len(src) == 0 {
		if err := checkSize("zstd", 0, size); err != nil {
			return nil, err
		}

		return dst, nil
	}

	if _, err := checkZstdFrame(src, size); err != nil {
		return nil, err
	}

	off := len(dst)
	out, err := gozstd.Decompress(dst, src)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkSize("zstd", len(out)-off, size); err != nil {
		return nil, err
	}

	return out, nil
}
