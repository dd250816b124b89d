package observability

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects Prometheus metrics for the listing service.
// Metric names are prefixed with the service name following Prometheus
// naming conventions.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	durationSeconds *prometheus.HistogramVec
	objectsListed   prometheus.Histogram
}

// NewMetrics creates a Metrics instance and registers all collectors with
// the given registerer. Panics on duplicate registration, so construct it
// once per process (tests pass a fresh prometheus.NewRegistry).
func NewMetrics(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: fmt.Sprintf("%s_requests_total", serviceName),
				Help: "Total handled requests by HTTP status code",
			},
			[]string{"status"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: fmt.Sprintf("%s_errors_total", serviceName),
				Help: "Total errors by error type",
			},
			[]string{"error_type"},
		),
		durationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    fmt.Sprintf("%s_duration_seconds", serviceName),
				Help:    "Operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		objectsListed: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    fmt.Sprintf("%s_objects_listed", serviceName),
				Help:    "Objects returned per listing page",
				Buckets: []float64{0, 1, 10, 50, 100, 250, 500, 1000},
			},
		),
	}

	reg.MustRegister(m.requestsTotal, m.errorsTotal, m.durationSeconds, m.objectsListed)
	return m
}

// RecordRequest increments the request counter for a status code.
func (m *Metrics) RecordRequest(statusCode int) {
	m.requestsTotal.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordError increments the error counter for an error type.
func (m *Metrics) RecordError(errorType string) {
	m.errorsTotal.WithLabelValues(errorType).Inc()
}

// ObserveDuration records an operation duration in seconds.
func (m *Metrics) ObserveDuration(operation string, seconds float64) {
	m.durationSeconds.WithLabelValues(operation).Observe(seconds)
}

// ObserveObjectCount records the number of objects in a listing page.
func (m *Metrics) ObserveObjectCount(count int) {
	m.objectsListed.Observe(float64(count))
}
