package review

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNoStay     = errors.New("no completed stay at this hotel")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
)
