package payment

import (
	"context"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

// paymentRepo is the ledger storage surface this service consumes.
type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error)
	MarkOutcome(ctx context.Context, paymentID, transactionID string, to domain.PaymentStatus) (repository.OutcomeResult, *domain.Payment, error)
}

// bookingReader resolves the booking a payment is opened against.
type bookingReader interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// bookingCompleter is the reconciler's hook into the booking lifecycle.
// Implemented by the booking service.
type bookingCompleter interface {
	CompleteBooking(ctx context.Context, bookingID string) error
}
