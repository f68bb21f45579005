package tablestore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Zero(t, m.Stats().PutAvgNanos)

	m.RecordPut(100, 10*time.Millisecond, nil)
	m.RecordPut(0, 30*time.Millisecond, errors.New("boom"))
	m.RecordGet(100, 5*time.Millisecond, nil)
	m.RecordDelete(time.Millisecond, nil)

	stats := m.Stats()
	assert.Equal(t, int64(2), stats.PutCount)
	assert.Equal(t, int64(1), stats.PutErrors)
	assert.Equal(t, int64(100), stats.PutBytes)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.PutAvgNanos)
	assert.Equal(t, int64(1), stats.GetCount)
	assert.Equal(t, int64(100), stats.GetBytes)
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Zero(t, stats.DeleteErrors)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordPut(1, time.Second, nil)
	m.RecordGet(1, time.Second, nil)
	m.RecordDelete(time.Second, nil)
}
