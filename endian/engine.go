// Package endian selects the byte order of snapshot headers and columns.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// encoder can append fixed-width values directly to its buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(x))
//
// The byte order of a snapshot is recorded in its header; FromFlag and Flag
// convert between an engine and that header bit. Engines are immutable and
// safe for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine is a byte order usable both for random access and appending.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the snapshot default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// Flag returns the header bit for engine: 1 for big-endian, 0 otherwise.
func Flag(engine EndianEngine) uint16 {
	if IsBigEndian(engine) {
		return 1
	}

	return 0
}

// FromFlag returns the engine recorded by a header bit set with Flag.
func FromFlag(bit uint16) EndianEngine {
	if bit&1 == 1 {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
