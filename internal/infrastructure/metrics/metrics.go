// Package metrics exposes prometheus instrumentation for the subscription
// lifecycle, permission changes and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kolhub"

// Metrics implements the lifecycle and permission recorders used by the
// use cases.
type Metrics struct {
	brandsLocked       prometheus.Counter
	remindersSent      prometheus.Counter
	remindersFailed    prometheus.Counter
	permissionsUpdated *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		brandsLocked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subscription",
			Name:      "brands_locked_total",
			Help:      "Total brands locked by the expiry sweep",
		}),
		remindersSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subscription",
			Name:      "reminders_sent_total",
			Help:      "Total expiry reminder e-mails delivered",
		}),
		remindersFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subscription",
			Name:      "reminders_failed_total",
			Help:      "Total expiry reminder e-mails that failed to send",
		}),
		permissionsUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "permission",
			Name:      "updates_total",
			Help:      "Total staff permission updates by resulting template",
		}, []string{"template"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// NewRegistry returns a registry with the go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the /metrics endpoint for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

func (m *Metrics) BrandsLocked(n int) {
	if n > 0 {
		m.brandsLocked.Add(float64(n))
	}
}

func (m *Metrics) ReminderSent() {
	m.remindersSent.Inc()
}

func (m *Metrics) ReminderFailed() {
	m.remindersFailed.Inc()
}

func (m *Metrics) PermissionsUpdated(template string) {
	m.permissionsUpdated.WithLabelValues(template).Inc()
}

// ObserveRequest records one HTTP request. route is the matched route
// pattern, never the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
