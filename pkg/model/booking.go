package model

import "time"

// Booking is a rider's reference to a session. Sessions are stored exactly
// once; the rider's list holds references only, so a claim never has to
// update two copies of the same session.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	RiderID   string    `json:"rider_id" bson:"rider_id" validate:"required,min=1,max=100"`
	SessionID string    `json:"session_id" bson:"session_id" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// BookingResult reports a seat booking together with the fill state the
// session reached, so callers never recompute confirmation rules themselves.
type BookingResult struct {
	Session   *Session  `json:"session"`
	FillState FillState `json:"fill_state"`
	Confirmed bool      `json:"confirmed"`
	Full      bool      `json:"full"`
}

// TripRequest is rider-originated demand for a session that does not exist
// yet. The ledger synthesizes an OPEN request session from it.
type TripRequest struct {
	RiderID  string `json:"rider_id" validate:"required,min=1,max=100"`
	Activity string `json:"activity" validate:"required,min=2,max=60"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Location string `json:"location" validate:"required,min=2,max=120"`
}

// Claim is an operator committing real capacity against an OPEN request:
// a concrete meeting point and a verified captain replace the placeholders.
type Claim struct {
	OperatorName string  `json:"operator_name" validate:"required,min=2,max=120"`
	MeetingPoint string  `json:"meeting_point" validate:"required,min=2,max=200"`
	Captain      Captain `json:"captain" validate:"required"`
}
