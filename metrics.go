package lineset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordExport is called after each export operation.
	// cells is the number of line cells assembled, duration is the total
	// time taken, err is nil if successful.
	RecordExport(cells int, duration time.Duration, err error)

	// RecordBatchExport is called after each batch export operation.
	// count is the number of elements attempted, failed is the number that
	// failed, duration is the total time taken.
	RecordBatchExport(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExport(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordBatchExport(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
	ExportCells      atomic.Int64
	ExportTotalNanos atomic.Int64
	BatchExportCount atomic.Int64
	BatchExportItems atomic.Int64
	BatchExportFails atomic.Int64
}

// RecordExport implements MetricsCollector.
func (c *BasicMetricsCollector) RecordExport(cells int, duration time.Duration, err error) {
	c.ExportCount.Add(1)
	c.ExportTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.ExportErrors.Add(1)
		return
	}
	c.ExportCells.Add(int64(cells))
}

// RecordBatchExport implements MetricsCollector.
func (c *BasicMetricsCollector) RecordBatchExport(count, failed int, duration time.Duration) {
	c.BatchExportCount.Add(1)
	c.BatchExportItems.Add(int64(count))
	c.BatchExportFails.Add(int64(failed))
	c.ExportTotalNanos.Add(duration.Nanoseconds())
}
