package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for dataset loading, dashboard
// requests and chart rendering.
type Metrics struct {
	DatasetRecords      prometheus.Gauge
	DatasetLoadFailures prometheus.Counter

	Requests    *prometheus.CounterVec // labels: endpoint, scope
	RateLimited prometheus.Counter

	ChartRenderDuration *prometheus.HistogramVec // labels: chart
	ChartRenderErrors   *prometheus.CounterVec   // labels: chart
}

// NewMetrics creates and registers all collectors with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.DatasetRecords,
		m.DatasetLoadFailures,
		m.Requests,
		m.RateLimited,
		m.ChartRenderDuration,
		m.ChartRenderErrors,
	)

	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build as
// many as they need without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "strike_dashboard",
			Name:      "dataset_records",
			Help:      "Number of cleaned records held in memory.",
		}),
		DatasetLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strike_dashboard",
			Name:      "dataset_load_failures_total",
			Help:      "Dataset loads that fell back to the empty dataset.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strike_dashboard",
			Name:      "requests_total",
			Help:      "Dashboard requests by endpoint and outcome scope.",
		}, []string{"endpoint", "scope"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strike_dashboard",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the global rate limiter.",
		}),
		ChartRenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "strike_dashboard",
			Name:      "chart_render_duration_seconds",
			Help:      "Time spent rendering one chart to SVG.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"chart"}),
		ChartRenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strike_dashboard",
			Name:      "chart_render_errors_total",
			Help:      "Chart renders that failed.",
		}, []string{"chart"}),
	}
}
