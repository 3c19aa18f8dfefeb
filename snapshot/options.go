package snapshot

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/sampleset/endian"
	"github.com/arloliu/sampleset/errs"
	"github.com/arloliu/sampleset/format"
	"github.com/arloliu/sampleset/internal/options"
)

type encoderConfig struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	logger      *zap.Logger
}

func defaultEncoderConfig() encoderConfig {
	return encoderConfig{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionZstd,
		logger:      zap.NewNop(),
	}
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithLittleEndian writes the snapshot in little-endian byte order (the default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes the snapshot in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// WithCompression selects the payload codec. The default is format.CompressionZstd.
//
// Returns an error wrapping errs.ErrInvalidCompression for an unknown type.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New("WithCompression", func(cfg *encoderConfig) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, compression)
		}
		cfg.compression = compression

		return nil
	})
}

// WithLogger sets the logger used for encode summaries. A nil logger
// disables logging.
func WithLogger(logger *zap.Logger) EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		cfg.logger = logger
	})
}
