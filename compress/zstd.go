package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/sampleset/format"
)

// ZstdCodec implements Zstandard compression. The backing implementation is
// selected at build time; see the package documentation.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Type returns format.CompressionZstd.
func (ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}

// checkZstdFrame reads the frame header of src and rejects a frame whose
// declared content size differs from size. It reports whether the frame
// declares its content size at all, so callers only preallocate size bytes
// once the frame itself vouches for them.
func checkZstdFrame(src []byte, size int) (bool, error) {
	var h zstd.Header
	if err := h.Decode(src); err != nil {
		return false, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if !h.HasFCS {
		return false, nil
	}
	if h.FrameContentSize != uint64(size) { //nolint:gosec
		return false, fmt.Errorf("zstd: frame declares %d bytes, expected %d", h.FrameContentSize, size)
	}

	return true, nil
}
