// Package encoding holds the low-level section codecs of the snapshot
// payload: length-prefixed set names and fixed-width float64 columns.
//
// Writers append to a pool.ByteBuffer; readers work on the decompressed
// payload and report truncation as errs.ErrCorruptPayload.
package encoding
