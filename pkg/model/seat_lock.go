package model

import "time"

// SeatLock is an advisory per-session lock document. A TTL index on
// ExpiresAt reaps locks left behind by crashed bookers.
type SeatLock struct {
	ID        string    `json:"id" bson:"_id"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
