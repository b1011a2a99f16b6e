package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "servicehub"

// Metrics owns the collectors exposed on /metrics. Each instance has its own
// registry so tests and multiple servers do not collide.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration  *prometheus.HistogramVec
	RepositoryFaults *prometheus.CounterVec
}

// New creates and registers all collectors, including the process and Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Tracks the duration of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		RepositoryFaults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "repository",
				Name:      "server_errors_total",
				Help:      "Counts repository operations that failed with a server error.",
			},
			[]string{"operation"},
		),
	}

	m.registry.MustRegister(
		m.RequestDuration,
		m.RepositoryFaults,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(duration.Seconds())
}

// RepositoryFault records a server error reported by the repository.
func (m *Metrics) RepositoryFault(operation string) {
	m.RepositoryFaults.WithLabelValues(operation).Inc()
}
