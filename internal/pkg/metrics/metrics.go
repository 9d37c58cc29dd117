// Package metrics exposes HTTP request metrics for Prometheus scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics carries the request instruments on its own registry so tests
// can create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	inFlight        prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	importOutcomes  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		importOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_records_total",
				Help: "Upstream import records by outcome.",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(m.inFlight, m.requestsTotal, m.requestDuration, m.importOutcomes)
	return m
}

// ObserveImport adds one import run's per-record outcomes.
func (m *Metrics) ObserveImport(created, skipped, failed int) {
	m.importOutcomes.WithLabelValues("created").Add(float64(created))
	m.importOutcomes.WithLabelValues("skipped").Add(float64(skipped))
	m.importOutcomes.WithLabelValues("failed").Add(float64(failed))
}

// Handler serves the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records count, latency and in-flight gauge per request.
// The route template is used as the path label so ids do not blow up
// label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.inFlight.Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.inFlight.Dec()
	}
}
