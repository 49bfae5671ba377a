package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"service", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	seatBookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seat_bookings_total",
			Help: "Seat booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	seatLockWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seat_lock_wait_seconds",
			Help:    "Time spent acquiring the per-session seat lock",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"outcome"},
	)
)

// Metrics records request counts and latency per service. Paths are not used
// as labels to keep cardinality bounded with ID-bearing routes.
func Metrics(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			httpRequests.WithLabelValues(service, r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
			httpDuration.WithLabelValues(service, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

// TrackSeatBooking counts booking outcomes (booked, capacity_exceeded, error).
func TrackSeatBooking(outcome string) {
	seatBookings.WithLabelValues(outcome).Inc()
}

// TrackSeatLockWait records how long a booking waited for its session lock.
func TrackSeatLockWait(outcome string, d time.Duration) {
	seatLockWait.WithLabelValues(outcome).Observe(d.Seconds())
}
