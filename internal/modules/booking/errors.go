package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrRoomUnavailable   = errors.New("room unavailable")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
)
