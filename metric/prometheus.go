package metric

import (
	"time"

	"github.com/hupe1980/vecload"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements vecload.MetricsCollector.
type PrometheusCollector struct {
	ingests  *prometheus.CounterVec
	rows     *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ vecload.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers it with reg.
// A nil reg selects prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		ingests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vecload_ingests_total",
			Help: "Total ingestion calls",
		}, []string{"source", "status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vecload_rows_written_total",
			Help: "Total matrix rows written",
		}, []string{"source"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vecload_records_skipped_total",
			Help: "Total records skipped for a size mismatch",
		}, []string{"source"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vecload_ingest_duration_seconds",
			Help:    "Wall time of ingestion calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"source", "status"}),
	}

	reg.MustRegister(c.ingests, c.rows, c.skipped, c.duration)
	return c
}

// RecordIngest implements vecload.MetricsCollector.
func (c *PrometheusCollector) RecordIngest(source string, written, skipped int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.ingests.WithLabelValues(source, status).Inc()
	c.rows.WithLabelValues(source).Add(float64(written))
	c.skipped.WithLabelValues(source).Add(float64(skipped))
	c.duration.WithLabelValues(source, status).Observe(d.Seconds())
}
