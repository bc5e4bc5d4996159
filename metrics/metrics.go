package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tinyerm"

// Outcome labels for registrations.
const (
	OutcomeSuccess          = "success"
	OutcomeHospitalNotFound = "hospital_not_found"
	OutcomePatientNotFound  = "patient_not_found"
	OutcomeConflict         = "conflict"
	OutcomeError            = "error"
)

// Metrics holds all application metrics. A nil *Metrics records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	Registrations      *prometheus.CounterVec
	AllocationRetries  prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestLatency *prometheus.HistogramVec
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patient_operations_total",
			Help:      "Patient create and update operations by outcome",
		}, []string{"operation", "outcome"}),
		AllocationRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registration_number_retries_total",
			Help:      "Registration numbers re-allocated after a collision on save",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "path"}),
	}

	m.Registry.MustRegister(
		m.Registrations,
		m.AllocationRetries,
		m.HTTPRequests,
		m.HTTPRequestLatency,
	)
	return m
}

func (m *Metrics) ObservePatientOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveAllocationRetry() {
	if m == nil {
		return
	}
	m.AllocationRetries.Inc()
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestLatency.WithLabelValues(method, path).Observe(seconds)
}
