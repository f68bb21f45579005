package tablestore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPut is called after each table write. bytes is the stored
	// snapshot size, err is nil if successful.
	RecordPut(bytes int, duration time.Duration, err error)

	// RecordGet is called after each table read.
	RecordGet(bytes int, duration time.Duration, err error)

	// RecordDelete is called after each table deletion.
	RecordDelete(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPut(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordGet(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	PutCount      atomic.Int64
	PutErrors     atomic.Int64
	PutBytes      atomic.Int64
	PutTotalNanos atomic.Int64
	GetCount      atomic.Int64
	GetErrors     atomic.Int64
	GetBytes      atomic.Int64
	GetTotalNanos atomic.Int64
	DeleteCount   atomic.Int64
	DeleteErrors  atomic.Int64
}

// RecordPut implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPut(bytes int, duration time.Duration, err error) {
	b.PutCount.Add(1)
	b.PutTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PutErrors.Add(1)
		return
	}
	b.PutBytes.Add(int64(bytes))
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(bytes int, duration time.Duration, err error) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GetErrors.Add(1)
		return
	}
	b.GetBytes.Add(int64(bytes))
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// Stats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	return BasicMetricsStats{
		PutCount:     b.PutCount.Load(),
		PutErrors:    b.PutErrors.Load(),
		PutBytes:     b.PutBytes.Load(),
		PutAvgNanos:  avg(b.PutTotalNanos.Load(), b.PutCount.Load()),
		GetCount:     b.GetCount.Load(),
		GetErrors:    b.GetErrors.Load(),
		GetBytes:     b.GetBytes.Load(),
		GetAvgNanos:  avg(b.GetTotalNanos.Load(), b.GetCount.Load()),
		DeleteCount:  b.DeleteCount.Load(),
		DeleteErrors: b.DeleteErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PutCount     int64
	PutErrors    int64
	PutBytes     int64
	PutAvgNanos  int64
	GetCount     int64
	GetErrors    int64
	GetBytes     int64
	GetAvgNanos  int64
	DeleteCount  int64
	DeleteErrors int64
}
