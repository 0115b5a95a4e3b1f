// internal/common/metrics/metrics.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClientRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillsync_client_requests_total",
			Help: "Total number of backend requests by operation and HTTP status code",
		},
		[]string{"operation", "status"},
	)

	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillsync_client_request_duration_seconds",
			Help:    "Round-trip duration of backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ClientRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skillsync_client_requests_in_flight",
			Help: "Number of backend requests currently awaiting a response",
		},
		[]string{"operation"},
	)

	ClientTransportErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillsync_client_transport_errors_total",
			Help: "Requests that failed before an HTTP response was received",
		},
		[]string{"operation"},
	)
)

// ObserveRequest records a completed round trip.
func ObserveRequest(operation string, statusCode int, d time.Duration) {
	ClientRequests.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	ClientRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveTransportError records a request that never got a response.
func ObserveTransportError(operation string, d time.Duration) {
	ClientTransportErrors.WithLabelValues(operation).Inc()
	ClientRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// TrackInFlight increments the in-flight gauge and returns the matching decrement.
func TrackInFlight(operation string) func() {
	g := ClientRequestsInFlight.WithLabelValues(operation)
	g.Inc()
	return g.Dec
}
