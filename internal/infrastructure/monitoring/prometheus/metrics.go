// Package prometheus registers and serves the engine's metrics.  The counter
// structs double as the application layer's Metrics implementations.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fristenwaechter"

// AppMetrics holds every metric the engine emits.
type AppMetrics struct {
	registry *prometheus.Registry

	RemindersReconciled prometheus.Counter
	StoreSaveFailures   prometheus.Counter

	NotificationsSent    prometheus.Counter
	NotificationsFailed  prometheus.Counter
	NotificationsSkipped prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewAppMetrics registers all metrics on a fresh registry.
func NewAppMetrics() *AppMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &AppMetrics{
		registry: reg,
		RemindersReconciled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_reconciled_total",
			Help:      "Reminders automatically transitioned to verpasst.",
		}),
		StoreSaveFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_save_failures_total",
			Help:      "Failed attempts to persist the reminder collection.",
		}),
		NotificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Due-reminder notifications delivered.",
		}),
		NotificationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Due-reminder notifications that failed to deliver.",
		}),
		NotificationsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_skipped_total",
			Help:      "Due-reminder notifications suppressed by the daily dedupe.",
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method and route.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),
	}
}

// Handler returns the scrape endpoint for the registry.
func (m *AppMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ReconciledMissed implements the reminder service's Metrics interface.
func (m *AppMetrics) ReconciledMissed(count int) {
	m.RemindersReconciled.Add(float64(count))
}

// StoreSaveFailed implements the reminder service's Metrics interface.
func (m *AppMetrics) StoreSaveFailed() {
	m.StoreSaveFailures.Inc()
}

// NotificationSent implements the dispatcher's metrics interface.
func (m *AppMetrics) NotificationSent() { m.NotificationsSent.Inc() }

// NotificationFailed implements the dispatcher's metrics interface.
func (m *AppMetrics) NotificationFailed() { m.NotificationsFailed.Inc() }

// NotificationSkipped implements the dispatcher's metrics interface.
func (m *AppMetrics) NotificationSkipped() { m.NotificationsSkipped.Inc() }
