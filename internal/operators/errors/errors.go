package errors

import "errors"

var (
	ErrNotFound  = errors.New("operator not found")
	ErrInvalidID = errors.New("invalid operator ID")
)
