package adogrid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see examples/observability).
type MetricsCollector interface {
	// RecordFind is called after each nearest-index search.
	// rows and dim describe the grid, duration is the time taken,
	// err is nil if successful.
	RecordFind(rows, dim int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFind(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FindCount      atomic.Int64
	FindErrors     atomic.Int64
	FindTotalNanos atomic.Int64
	RowsScanned    atomic.Int64
	ValuesCompared atomic.Int64
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(rows, dim int, duration time.Duration, err error) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FindErrors.Add(1)
		return
	}
	b.RowsScanned.Add(int64(rows))
	b.ValuesCompared.Add(int64(rows) * int64(dim))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FindCount:      b.FindCount.Load(),
		FindErrors:     b.FindErrors.Load(),
		FindAvgNanos:   b.getAvgFindNanos(),
		RowsScanned:    b.RowsScanned.Load(),
		ValuesCompared: b.ValuesCompared.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFindNanos() int64 {
	count := b.FindCount.Load()
	if count == 0 {
		return 0
	}
	return b.FindTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FindCount      int64
	FindErrors     int64
	FindAvgNanos   int64
	RowsScanned    int64
	ValuesCompared int64
}
