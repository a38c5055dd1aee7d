package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
)
