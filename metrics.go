package vecload

import (
	"sync/atomic"
	"time"
)

// Ingestion kinds reported to a MetricsCollector.
const (
	KindSequence = "sequence"
	KindFile     = "file"
	KindReader   = "reader"
	KindBlob     = "blob"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the metric
// package ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordIngest is called once per ingestion call, after it finished.
	// source is one of the Kind constants, written and skipped are row
	// and record counts, err is nil if successful.
	RecordIngest(source string, written, skipped int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIngest(string, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IngestCount    atomic.Int64
	IngestErrors   atomic.Int64
	RowsWritten    atomic.Int64
	RecordsSkipped atomic.Int64
	TotalNanos     atomic.Int64
}

// RecordIngest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIngest(_ string, written, skipped int, duration time.Duration, err error) {
	b.IngestCount.Add(1)
	b.RowsWritten.Add(int64(written))
	b.RecordsSkipped.Add(int64(skipped))
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IngestErrors.Add(1)
	}
}

// Stats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	count := b.IngestCount.Load()
	var avg int64
	if count > 0 {
		avg = b.TotalNanos.Load() / count
	}
	return BasicMetricsStats{
		IngestCount:    count,
		IngestErrors:   b.IngestErrors.Load(),
		RowsWritten:    b.RowsWritten.Load(),
		RecordsSkipped: b.RecordsSkipped.Load(),
		AvgNanos:       avg,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IngestCount    int64
	IngestErrors   int64
	RowsWritten    int64
	RecordsSkipped int64
	AvgNanos       int64
}
