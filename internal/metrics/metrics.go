package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is served on /metrics. Collectors in this package and the HTTP
// middleware register here instead of the global default registry.
var Registry = prometheus.NewRegistry()

var (
	// upstream latency in seconds, OpenWeatherMap is usually 100-800ms
	latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

	UpstreamRequests = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherdash_upstream_requests_total",
			Help: "Requests sent to the weather provider, by call and outcome.",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamLatency = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weatherdash_upstream_latency_seconds",
			Help:    "Weather provider round trip latency.",
			Buckets: latencyBuckets,
		},
		[]string{"endpoint"},
	)

	CacheResults = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherdash_cache_results_total",
			Help: "Upstream cache lookups by result (hit, miss, error).",
		},
		[]string{"result"},
	)

	BreakerState = promauto.With(Registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "weatherdash_breaker_open",
			Help: "1 while the upstream circuit breaker is open, 0 otherwise.",
		},
		[]string{"name"},
	)

	ObservationsSaved = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherdash_observations_saved_total",
			Help: "Weather observations persisted, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
