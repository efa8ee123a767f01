package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the aggregation engine.
type Metrics struct {
	ReportsSubmitted *prometheus.CounterVec // labels: kind, signal
	IncidentsMerged  prometheus.Counter
	IncidentsCreated prometheus.Counter
	EntitiesClosed   *prometheus.CounterVec // labels: class={incident,outage}, cause={resolution,expiry}
	AggregationFails prometheus.Counter
	SweepDuration    prometheus.Histogram
	AlertZonesFound  prometheus.Gauge
}

// NewMetrics creates and registers everything with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.IncidentsMerged,
		m.IncidentsCreated,
		m.EntitiesClosed,
		m.AggregationFails,
		m.SweepDuration,
		m.AlertZonesFound,
	)
	return m
}

// NewMetricsForTesting returns unregistered instruments so parallel tests do
// not trip "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayii",
			Name:      "reports_submitted_total",
			Help:      "Reports accepted, by kind and signal.",
		}, []string{"kind", "signal"}),
		IncidentsMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ayii",
			Name:      "incidents_merged_total",
			Help:      "Occurrence reports attached to an existing incident.",
		}),
		IncidentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ayii",
			Name:      "incidents_created_total",
			Help:      "Incidents created because no active match was in merge range.",
		}),
		EntitiesClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayii",
			Name:      "entities_closed_total",
			Help:      "Entities closed, by class and cause.",
		}, []string{"class", "cause"}),
		AggregationFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ayii",
			Name:      "aggregation_failures_total",
			Help:      "Reports recorded whose merge/closure side effect failed.",
		}),
		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ayii",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a full expiry sweep.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		AlertZonesFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ayii",
			Name:      "alert_zones_found",
			Help:      "Zones flagged by the last density computation.",
		}),
	}
}
