package section

import (
	"github.com/arloliu/sampleset/endian"
	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/format"
)

// Flag holds the options and compression bytes of a snapshot header.
type Flag struct {
	// Options: bit 0 endianness, bits 1-3 reserved, bits 4-15 magic number.
	Options uint16
	// CompressionType is the format.CompressionType of the payload.
	CompressionType uint8
}

// NewFlag returns the default flag: little-endian, Zstd compressed.
func NewFlag() Flag {
	return Flag{
		Options:         MagicSnapshotV1Opt,
		CompressionType: uint8(format.CompressionZstd),
	}
}

// IsBigEndian reports whether the snapshot body is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian marks the snapshot body as little-endian.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian marks the snapshot body as big-endian.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetEndianEngine records the byte order of engine.
func (f *Flag) SetEndianEngine(engine endian.EndianEngine) {
	f.Options = (f.Options &^ EndiannessMask) | endian.Flag(engine)
}

// GetEndianEngine returns the engine for the recorded byte order.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.FromFlag(f.Options)
}

// GetMagicNumber returns the magic number bits of the options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression records the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks the magic number and compression type.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicSnapshotV1Opt {
		return errs.ErrInvalidMagic
	}
	if !f.Compression().Valid() {
		return errs.ErrInvalidCompression
	}

	return nil
}
