package snapshot

import (
	"github.com/hupe1980/idxarray/codec"
	"github.com/klauspost/compress/zstd"
)

type options struct {
	codec       codec.Codec
	compression Compression
	zstdLevel   zstd.EncoderLevel
}

// Option configures encoding and decoding.
type Option func(*options)

func defaultOptions() options {
	return options{
		codec:       codec.Default,
		compression: CompressionZSTD,
		zstdLevel:   zstd.SpeedDefault,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCodec configures the codec used to encode the element sequence.
//
// When decoding, the codec is used only if its name matches the one
// recorded in the snapshot; otherwise the built-in codec of that name is
// used. This allows custom codecs to be registered for reading.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the payload compression. Default: zstd.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithZstdLevel configures the zstd level using the zstd command line
// scale (1-22), mapped onto the encoder's speed presets.
func WithZstdLevel(level int) Option {
	return func(o *options) {
		o.zstdLevel = zstd.EncoderLevelFromZstd(level)
	}
}
