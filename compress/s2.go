package compress

import (
	"fmt"

	"github.com/arloliu/sampleset/format"
	"github.com/klauspost/compress/s2"
)

// S2Codec implements S2 block compression, a faster Snappy-compatible format.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Type returns format.CompressionS2.
func (S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress appends the S2 block of src to dst.
func (S2Codec) Compress(dst, src []byte) ([]byte, error) {
	dst, off := grow(dst, s2.MaxEncodedLen(len(src)))
	block := s2.Encode(dst[off:], src)

	return dst[:off+len(block)], nil
}

// Decompress appends the decoded block to dst.
func (S2Codec) Decompress(dst, src []byte, size int) ([]byte, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if err := checkSize("s2", n, size); err != nil {
		return nil, err
	}

	dst, off := grow(dst, n)
	if _, err := s2.Decode(dst[off:], src); err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return dst, nil
}
