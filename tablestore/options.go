package tablestore

import (
	"runtime"

	"github.com/hupe1980/idxarray/codec"
	"github.com/hupe1980/idxarray/snapshot"
)

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	codec       codec.Codec
	compression snapshot.Compression
	concurrency int
	memoryLimit int64
	rateLimit   int64
}

// Option configures a Store.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		codec:       codec.Default,
		compression: snapshot.CompressionZSTD,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. Default: NoopLogger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics collector. Default: NoopMetricsCollector.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithCodec sets the element codec used for writes. Reads pick the codec
// recorded in each snapshot. Default: codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression sets the payload compression used for writes.
// Default: snapshot.CompressionZSTD.
func WithCompression(c snapshot.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithConcurrency sets the number of tables PutAll and GetAll transfer at
// once. Default: GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithMemoryLimit bounds the snapshot bytes held in flight across all
// operations. Default: unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = max(bytes, 0)
	}
}

// WithRateLimit bounds transfer throughput in bytes per second.
// Default: unlimited.
func WithRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.rateLimit = max(bytesPerSec, 0)
	}
}

func (o *options) snapshotOptions() []snapshot.Option {
	return []snapshot.Option{
		snapshot.WithCodec(o.codec),
		snapshot.WithCompression(o.compression),
	}
}
