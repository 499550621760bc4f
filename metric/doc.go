// Package metric exports ingestion metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := metric.NewPrometheusCollector(reg)
//	report, err := vecload.IngestFile(ctx, path, m, vecload.WithMetricsCollector(mc))
package metric
