package section

import (
	"github.com/arloliu/sampleset/errs"
)

// Header is the fixed-size header at the start of every snapshot.
type Header struct {
	Flag Flag // byte offset 0-2

	SetCount    uint32 // byte offset 4-7
	PayloadSize uint32 // byte offset 8-11, uncompressed
	Checksum    uint64 // byte offset 12-19, xxHash64 of the uncompressed payload
}

// NewHeader creates a header with the default flag.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse decodes a header from exactly HeaderSize bytes and validates its flag.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]

	engine := h.Flag.GetEndianEngine()

	h.SetCount = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	return h.Flag.Validate()
}

// Bytes encodes the header into a new HeaderSize slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the encoded header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.CompressionType, 0)
	dst = engine.AppendUint32(dst, h.SetCount)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return append(dst, 0, 0, 0, 0)
}

// ParseHeader decodes the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
