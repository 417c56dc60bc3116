package datapoint

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for client request accounting.
// Attach to a Client with SetMetrics; a client without metrics records
// nothing.
type Metrics struct {
	Requests        *prometheus.CounterVec   // labels: endpoint, outcome={success,http_error,error}
	RequestDuration *prometheus.HistogramVec // labels: endpoint
}

// NewMetrics creates and registers the client metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Requests, m.RequestDuration)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datapoint",
			Name:      "requests_total",
			Help:      "DataPoint API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "datapoint",
			Name:      "request_duration_seconds",
			Help:      "DataPoint API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
	}
}
