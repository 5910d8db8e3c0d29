// Package metric provides Prometheus metrics for LockMap.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation label values for OpsTotal and OpDuration.
const (
	OpGet    = "get"
	OpPut    = "put"
	OpDelete = "delete"
)

// Outcome label values for OpsTotal.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

// Registry holds all application metrics.
type Registry struct {
	// Map metrics
	OpsTotal   *prometheus.CounterVec
	OpDuration *prometheus.HistogramVec
	Entries    prometheus.Gauge
	Capacity   prometheus.Gauge

	// Surface metrics
	HTTPRequests *prometheus.CounterVec
	RESPCommands *prometheus.CounterVec

	reg *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all collectors
// registered, including the standard Go and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Registry{
		OpsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lockmap_ops_total",
			Help: "Completed map operations by type and outcome.",
		}, []string{"op", "outcome"}),

		OpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lockmap_op_duration_seconds",
			Help:    "Map operation latency, including lock wait.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op"}),

		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lockmap_entries",
			Help: "Live entries in the map.",
		}),

		Capacity: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lockmap_capacity",
			Help: "Fixed bucket count of the map.",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lockmap_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "code"}),

		RESPCommands: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lockmap_resp_commands_total",
			Help: "RESP commands by verb.",
		}, []string{"cmd"}),

		reg: reg,
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// ObserveOp records one completed map operation.
func (r *Registry) ObserveOp(op string, hit bool, seconds float64) {
	outcome := OutcomeMiss
	if hit {
		outcome = OutcomeHit
	}
	r.OpsTotal.WithLabelValues(op, outcome).Inc()
	r.OpDuration.WithLabelValues(op).Observe(seconds)
}
