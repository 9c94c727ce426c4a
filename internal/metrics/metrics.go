package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "academy_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StudioBookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_studio_bookings_total",
			Help: "Studio booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	StudioBookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "academy_studio_booking_cancellations_total",
			Help: "Total number of studio booking cancellations",
		},
	)

	AvailabilityLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_availability_lookups_total",
			Help: "Availability grid lookups by snapshot source",
		},
		[]string{"source"},
	)

	AuditQueueDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "academy_audit_events_dropped_total",
			Help: "Audit events dropped because the queue was full",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordStudioBooking counts a create attempt: created, conflict, invalid or error.
func RecordStudioBooking(outcome string) {
	StudioBookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordStudioBookingCancellation() {
	StudioBookingCancellationsTotal.Inc()
}

// RecordAvailabilityLookup counts where a bookings snapshot came from: cache or db.
func RecordAvailabilityLookup(source string) {
	AvailabilityLookupsTotal.WithLabelValues(source).Inc()
}

func RecordAuditDrop() {
	AuditQueueDropped.Inc()
}
