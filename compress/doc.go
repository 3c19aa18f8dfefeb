// Package compress provides the block codecs applied to snapshot payloads.
//
// Every codec is stateless from the caller's point of view and safe for
// concurrent use; encoders and decoders that are expensive to build are
// pooled internally. Codecs are looked up by format.CompressionType with
// GetCodec.
//
// The Zstandard codec uses github.com/klauspost/compress by default. Building
// with the cgozstd tag (and cgo enabled) switches it to github.com/valyala/gozstd.
package compress
