package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather"

// Metrics holds the Prometheus collectors for fetching and rendering reports.
type Metrics struct {
	// Upstream metrics.
	FetchRequests *prometheus.CounterVec   // labels: source={wttr,geoip}, outcome={success,error,not_found,circuit_open}
	FetchDuration *prometheus.HistogramVec // labels: source
	FetchRetries  *prometheus.CounterVec   // labels: source

	// Cache metrics.
	CacheLookups *prometheus.CounterVec // labels: result={hit,miss,expired}
	CacheEntries prometheus.Gauge

	// Render metrics.
	ReportsRendered prometheus.Counter
	FieldProblems   prometheus.Counter

	// Warmer metrics.
	WarmRuns prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_requests_total",
			Help:      "Upstream requests by source and outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Upstream request duration in seconds, retries included.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
		FetchRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_retries_total",
			Help:      "Upstream request retries by source.",
		}, []string{"source"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Report cache lookups by result.",
		}, []string{"result"}),
		CacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Reports currently held in the cache.",
		}),
		ReportsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_rendered_total",
			Help:      "Reports formatted for display.",
		}),
		FieldProblems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_problems_total",
			Help:      "Missing or invalid fields found while rendering reports.",
		}),
		WarmRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_warm_runs_total",
			Help:      "Completed cache warming runs.",
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.FetchRetries,
		m.CacheLookups,
		m.CacheEntries,
		m.ReportsRendered,
		m.FieldProblems,
		m.WarmRuns,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
