package errors

import "errors"

var (
	ErrNotFound = errors.New("session not found")

	ErrInvalidID = errors.New("invalid session ID format")

	ErrCapacityExceeded = errors.New("session capacity exceeded")

	ErrNotOpenRequest = errors.New("session is not an open trip request")

	ErrNotFull = errors.New("session is not full")

	ErrAlreadyBooked = errors.New("rider already booked this session")

	ErrAlreadyWaitlisted = errors.New("rider already on the waitlist")
)
