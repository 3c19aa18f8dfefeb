package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType(t *testing.T) {
	tests := []struct {
		input string
		want  CompressionType
		name  string
	}{
		{"none", CompressionNone, "None"},
		{"", CompressionNone, "None"},
		{"ZSTD", CompressionZstd, "Zstd"},
		{" s2 ", CompressionS2, "S2"},
		{"lz4", CompressionLZ4, "LZ4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCompression(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.name, got.String())
			require.True(t, got.Valid())
		})
	}

	_, err := ParseCompression("gzip")
	require.Error(t, err)

	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(9).Valid())
	require.Equal(t, "Unknown", CompressionType(9).String())
}
