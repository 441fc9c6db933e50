package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tennisclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tennisclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tennisclub_reservations_created_total",
			Help: "Total number of reservations created",
		},
		[]string{"game_type"},
	)

	ReservationConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tennisclub_reservation_conflicts_total",
			Help: "Total number of reservation attempts rejected for overlap",
		},
	)

	ReservationCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tennisclub_reservation_cancellations_total",
			Help: "Total number of reservations soft-deleted",
		},
	)

	CourtLockContentionTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tennisclub_court_lock_contention_total",
			Help: "Times the per-court booking lock was already held",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordReservation(gameType string) {
	ReservationsCreatedTotal.WithLabelValues(gameType).Inc()
}

func RecordReservationConflict() {
	ReservationConflictsTotal.Inc()
}

func RecordReservationCancellation() {
	ReservationCancellationsTotal.Inc()
}

func RecordCourtLockContention() {
	CourtLockContentionTotal.Inc()
}
