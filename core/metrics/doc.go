// Package metrics defines the events emitted while a session generates
// reports and the sinks that record them. Concrete sinks live in
// infra/metrics and register themselves by name; NewMetricsSink builds one
// sink, or a MultiSink when several are configured.
package metrics
