package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	DeletionsRequested prometheus.Counter
	DeletionsSucceeded prometheus.Counter
	DeletionsFailed    *prometheus.CounterVec
	CascadeDuration    prometheus.Histogram
}

// IncRequested increments the deletion request counter. Nil-safe so callers
// constructed without metrics (tests) need no guards.
func (m *Metrics) IncRequested() {
	if m == nil {
		return
	}
	m.DeletionsRequested.Inc()
}

// IncSucceeded increments the completed deletion counter.
func (m *Metrics) IncSucceeded() {
	if m == nil {
		return
	}
	m.DeletionsSucceeded.Inc()
}

// IncFailed increments the failed deletion counter for the given error code.
func (m *Metrics) IncFailed(code string) {
	if m == nil {
		return
	}
	m.DeletionsFailed.WithLabelValues(code).Inc()
}

// ObserveCascade records one cascading delete duration in seconds.
func (m *Metrics) ObserveCascade(seconds float64) {
	if m == nil {
		return
	}
	m.CascadeDuration.Observe(seconds)
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DeletionsRequested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kith_account_deletions_requested_total",
			Help: "Total number of account deletion requests received",
		}),
		DeletionsSucceeded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kith_account_deletions_succeeded_total",
			Help: "Total number of account deletions completed end to end",
		}),
		DeletionsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kith_account_deletions_failed_total",
			Help: "Total number of failed account deletion requests by error code",
		}, []string{"code"}),
		CascadeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kith_cascade_delete_duration_seconds",
			Help:    "Duration of the cascading delete transaction",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}
