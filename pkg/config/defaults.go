package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "wakeline"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 20
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSeatLockTTL = 10 * time.Second

	// Crowdsourced request policy. Placeholder business numbers carried over
	// from the launch market, kept configurable per deployment.
	DefaultRequestTripSeats       = 5
	DefaultRequestTripMinRiders   = 3
	DefaultRequestTripPrice       = 200.0
	DefaultRequestTripCurrency    = "AED"
	DefaultRequestTripDurationMin = 60

	DefaultPaginationLimit = 100
)
