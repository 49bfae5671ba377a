package middleware

import (
	"net/http"
	"sync"
	"time"

	"wakeline/pkg/logger"
)

type RiderExtractor func(r *http.Request) string

// RiderRateLimiter throttles per rider using a sliding window. Booking spam
// from one rider must not hold seats hostage across the fleet.
type RiderRateLimiter struct {
	mu             sync.RWMutex
	requests       map[string][]time.Time
	limit          int
	window         time.Duration
	riderExtractor RiderExtractor
	log            *logger.Logger
	stopCh         chan struct{}
}

func NewRiderRateLimiter(limit int, window time.Duration, extractor RiderExtractor, log *logger.Logger) *RiderRateLimiter {
	limiter := &RiderRateLimiter{
		requests:       make(map[string][]time.Time),
		limit:          limit,
		window:         window,
		riderExtractor: extractor,
		log:            log,
		stopCh:         make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *RiderRateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for rider, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, rider)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RiderRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *RiderRateLimiter) Allow(rider string) bool {
	if rider == "" {
		return true
	}

	now := time.Now()

	rl.mu.RLock()
	timestamps := rl.requests[rider]
	rl.mu.RUnlock()

	validTimestamps := make([]time.Time, 0)
	for _, ts := range timestamps {
		if now.Sub(ts) < rl.window {
			validTimestamps = append(validTimestamps, ts)
		}
	}

	if len(validTimestamps) >= rl.limit {
		return false
	}

	validTimestamps = append(validTimestamps, now)

	rl.mu.Lock()
	rl.requests[rider] = validTimestamps
	rl.mu.Unlock()

	return true
}

func RiderRateLimit(limiter *RiderRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rider := extractRiderID(r, limiter.riderExtractor)

			if rider == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(rider) {
				rejectRateLimited(w, limiter.log, r, rider)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractRiderID(r *http.Request, extractor RiderExtractor) string {
	if extractor == nil {
		return r.Header.Get("X-Rider-ID")
	}
	return extractor(r)
}

func rejectRateLimited(w http.ResponseWriter, log *logger.Logger, r *http.Request, rider string) {
	requestID := ""
	if rid := r.Context().Value(RequestIDKey); rid != nil {
		requestID = rid.(string)
	}

	log.Warn("Rate limit exceeded",
		"request_id", requestID,
		"rider_id", rider,
		"path", r.URL.Path,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
}

func DefaultRiderExtractor(r *http.Request) string {
	return r.Header.Get("X-Rider-ID")
}
