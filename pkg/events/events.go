// Package events defines the topics and payloads exchanged between the
// sessions service and the notifier.
package events

import "time"

// Topics
const (
	TopicSessionEvents = "session-events"
	TopicSessionDLQ    = "dlq-session-events"
)

// Event types carried in the event-type header
const (
	TypeSeatBooked       = "session.seat_booked"
	TypeSessionConfirmed = "session.confirmed"
	TypeSessionFull      = "session.full"
	TypeWaitlistJoined   = "session.waitlist_joined"
	TypeRequestOpened    = "session.request_opened"
	TypeRequestClaimed   = "session.request_claimed"
)

// SchemaVersion is the current payload schema version.
const SchemaVersion = "1"

// SeatBooked is emitted after every successful booking.
type SeatBooked struct {
	SessionID   string    `json:"session_id"`
	RiderID     string    `json:"rider_id"`
	BookedSeats int       `json:"booked_seats"`
	TotalSeats  int       `json:"total_seats"`
	FillState   string    `json:"fill_state"`
	BookedAt    time.Time `json:"booked_at"`
}

// SessionConfirmed is emitted when a booking pushes a session across its
// confirmation threshold.
type SessionConfirmed struct {
	SessionID   string    `json:"session_id"`
	BookedSeats int       `json:"booked_seats"`
	MinRiders   int       `json:"min_riders"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// SessionFull is emitted when the last seat is taken.
type SessionFull struct {
	SessionID  string    `json:"session_id"`
	TotalSeats int       `json:"total_seats"`
	FullAt     time.Time `json:"full_at"`
}

// WaitlistJoined is emitted when a rider joins a full session's waitlist.
type WaitlistJoined struct {
	SessionID string    `json:"session_id"`
	RiderID   string    `json:"rider_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

// RequestOpened is emitted when a rider opens a crowdsourced trip request.
type RequestOpened struct {
	SessionID string    `json:"session_id"`
	RiderID   string    `json:"rider_id"`
	Activity  string    `json:"activity"`
	Location  string    `json:"location"`
	OpenedAt  time.Time `json:"opened_at"`
}

// RequestClaimed is emitted when an operator wins an open trip request.
type RequestClaimed struct {
	SessionID    string    `json:"session_id"`
	OperatorName string    `json:"operator_name"`
	MeetingPoint string    `json:"meeting_point"`
	ClaimedAt    time.Time `json:"claimed_at"`
}
