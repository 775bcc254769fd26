// Package metrics defines the sinks that record inspection outcomes. Concrete
// Prometheus and InfluxDB sinks live in infra/metrics and register themselves
// with RegisterMetricsSink; NewMetricsSink builds them from configuration and
// returns a MultiSink when several are configured.
package metrics
