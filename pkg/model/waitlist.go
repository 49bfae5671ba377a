package model

import "time"

// WaitlistEntry records a rider's intent to be notified if a full session's
// capacity changes. Entries are FIFO by CreatedAt and unique per
// (session, rider); joining twice keeps the original position.
type WaitlistEntry struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	SessionID string    `json:"session_id" bson:"session_id" validate:"required,min=1,max=100"`
	RiderID   string    `json:"rider_id" bson:"rider_id" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}
