package catalog

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrDuplicateRoom = errors.New("room number already exists in hotel")
)
