// Package metrics exposes Prometheus instrumentation for the comparison
// service: request traffic, pipeline throughput, score distribution, upload
// volume, and storage health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles every collector the service registers. Handlers and the
// pipeline record through it so tests can read counters back directly.
type Registry struct {
	registry *prometheus.Registry

	ComparisonsTotal  prometheus.Counter
	CompareDuration   prometheus.Histogram
	EvidenceScores    prometheus.Histogram
	UploadsTotal      *prometheus.CounterVec
	UploadBytes       *prometheus.CounterVec
	HTTPRequestsTotal *prometheus.CounterVec
	WebsocketClients  prometheus.Gauge
	StorageFailures   *prometheus.CounterVec
}

// New creates a Registry on a fresh private registerer.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		ComparisonsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hlcompare",
			Name:      "comparisons_total",
			Help:      "Completed comparison pipeline runs.",
		}),
		CompareDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hlcompare",
			Name:      "compare_duration_seconds",
			Help:      "Wall time of a full comparison run.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		EvidenceScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hlcompare",
			Name:      "evidence_quality_score",
			Help:      "Distribution of composite evidence quality scores.",
			Buckets:   []float64{40, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100},
		}),
		UploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hlcompare",
			Name:      "uploads_total",
			Help:      "Uploaded documents by detected kind.",
		}, []string{"kind"}),
		UploadBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hlcompare",
			Name:      "upload_bytes_total",
			Help:      "Uploaded bytes by detected kind.",
		}, []string{"kind"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hlcompare",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "path", "status"}),
		WebsocketClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hlcompare",
			Name:      "websocket_clients",
			Help:      "Currently connected websocket subscribers.",
		}),
		StorageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hlcompare",
			Name:      "storage_failures_total",
			Help:      "Database operations rejected or failed, by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		r.ComparisonsTotal,
		r.CompareDuration,
		r.EvidenceScores,
		r.UploadsTotal,
		r.UploadBytes,
		r.HTTPRequestsTotal,
		r.WebsocketClients,
		r.StorageFailures,
	)

	return r
}

// Gatherer returns the underlying registry for the /metrics handler.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
