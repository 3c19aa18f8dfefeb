package compress

import (
	"fmt"

	"github.com/arloliu/sampleset/format"
)

// Compressor compresses a whole payload in one call.
type Compressor interface {
	// Compress appends the compressed form of src to dst and returns the
	// extended slice. dst may be nil.
	Compress(dst, src []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress appends the decompressed form of src to dst. size is the
	// expected decompressed length, as recorded next to the payload; a result
	// of any other length is an error.
	Decompress(dst, src []byte, size int) ([]byte, error)
}

// Codec is a Compressor and Decompressor pair for one compression type.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec returns the shared codec for compressionType.
//
// Parameters:
//   - compressionType: Compression type recorded in a snapshot header
//
// Returns:
//   - Codec: The codec, safe for concurrent use
//   - error: Error if the type is unknown
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func checkSize(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: decompressed %d bytes, expected %d", name, got, want)
	}

	return nil
}

// grow returns dst with room for n more bytes and the offset where they start.
func grow(dst []byte, n int) ([]byte, int) {
	off := len(dst)
	if cap(dst)-off < n {
		next := make([]byte, off, off+n)
		copy(next, dst)
		dst = next
	}

	return dst[:off+n], off
}
