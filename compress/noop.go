package compress

import "github.com/arloliu/sampleset/format"

// NoOpCodec copies the payload unchanged.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that performs no compression.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Type returns format.CompressionNone.
func (NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress appends src to dst.
func (NoOpCodec) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

// Decompress appends src to dst after checking that it is size bytes long.
func (NoOpCodec) Decompress(dst, src []byte, size int) ([]byte, error) {
	if err := checkSize("none", len(src), size); err != nil {
		return nil, err
	}

	return append(dst, src...), nil
}
