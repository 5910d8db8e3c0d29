// Package metric provides Prometheus metrics for LockMap.
//
// It exposes metrics in Prometheus format for monitoring map
// occupancy, operation rates, latencies and the serving surfaces.
//
// All metrics live in a private prometheus.Registry so tests can
// construct registries side by side without collision panics.
package metric
