// Package section defines the fixed-size parts of a sample-set snapshot: the
// 24-byte header and the 12-byte per-set index entry.
//
// Layout of the header:
//
//	0-1   options     bit 0 endianness (1 = big), bits 4-15 magic
//	2     compression format.CompressionType of the payload
//	3     reserved
//	4-7   set count
//	8-11  uncompressed payload length
//	12-19 xxHash64 of the uncompressed payload
//	20-23 reserved
//
// The options field is always little-endian so the byte order of the rest of
// the snapshot can be read before anything else.
package section
