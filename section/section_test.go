package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sampleset/endian"
	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/format"
)

func TestHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		h := NewHeader()
		if big {
			h.Flag.WithBigEndian()
		}
		h.Flag.SetCompression(format.CompressionLZ4)
		h.SetCount = 3
		h.PayloadSize = 4096
		h.Checksum = 0x0123456789abcdef

		data := h.Bytes()
		require.Len(t, data, HeaderSize)

		got, err := ParseHeader(append(data, 0xff)) // trailing payload is ignored
		require.NoError(t, err)
		require.Equal(t, *h, got)
		require.Equal(t, big, got.Flag.IsBigEndian())
		require.Equal(t, big, endian.IsBigEndian(got.Flag.GetEndianEngine()))
	}
}

func TestHeader_Layout(t *testing.T) {
	h := NewHeader()
	h.Flag.WithBigEndian()
	h.SetCount = 1

	data := h.Bytes()
	require.Equal(t, []byte{0x11, 0x5A, byte(format.CompressionZstd), 0}, data[:4])
	require.Equal(t, []byte{0, 0, 0, 1}, data[4:8])
	require.Equal(t, []byte{0, 0, 0, 0}, data[20:24])
}

func TestHeader_Invalid(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	var h Header
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)

	data := NewHeader().Bytes()
	data[1] = 0xEA
	_, err = ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)

	data = NewHeader().Bytes()
	data[2] = 0x9
	_, err = ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestFlag(t *testing.T) {
	f := NewFlag()
	require.False(t, f.IsBigEndian())
	require.Equal(t, uint16(MagicSnapshotV1Opt), f.GetMagicNumber())
	require.Equal(t, format.CompressionZstd, f.Compression())

	f.SetEndianEngine(endian.GetBigEndianEngine())
	require.True(t, f.IsBigEndian())
	f.WithLittleEndian()
	require.False(t, f.IsBigEndian())
	require.NoError(t, f.Validate())
}

func TestIndexEntry(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	e := IndexEntry{ID: 42, Count: 7}

	data := e.AppendTo(nil, engine)
	require.Len(t, data, IndexEntrySize)

	got, err := ParseIndexEntry(data, engine)
	require.NoError(t, err)
	require.Equal(t, e, got)

	_, err = ParseIndexEntry(data[:IndexEntrySize-1], engine)
	require.ErrorIs(t, err, errs.ErrCorruptPayload)
}
