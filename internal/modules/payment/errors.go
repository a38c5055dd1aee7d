package payment

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrDuplicatePayment    = errors.New("booking already has a payment")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrConflictingCallback = errors.New("conflicting gateway callback")
	ErrAmountMismatch      = errors.New("amount mismatch")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
)
