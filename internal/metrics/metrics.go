package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal)
}

// RecordRequest observes one finished request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func RecordRequest(method, path string, status int, seconds float64) {
	code := strconv.Itoa(status)
	RequestDuration.WithLabelValues(method, path, code).Observe(seconds)
	RequestTotal.WithLabelValues(method, path, code).Inc()
}
