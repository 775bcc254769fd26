// Package infra holds the adapters behind the core interfaces: the zerolog
// logger, the Paho service notifier, the Prometheus and InfluxDB sinks and
// the Sentry monitor.
package infra
