package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSeatLockTTL = "SEAT_LOCK_TTL"

	EnvRequestTripSeats       = "REQUEST_TRIP_SEATS"
	EnvRequestTripMinRiders   = "REQUEST_TRIP_MIN_RIDERS"
	EnvRequestTripPrice       = "REQUEST_TRIP_PRICE"
	EnvRequestTripCurrency    = "REQUEST_TRIP_CURRENCY"
	EnvRequestTripDurationMin = "REQUEST_TRIP_DURATION_MIN"

	EnvPaymentEndpoint = "PAYMENT_ENDPOINT"
)
