package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

type Service struct {
	payments  paymentRepo
	bookings  bookingReader
	lifecycle bookingCompleter
	loggerf   func(format string, args ...interface{})
}

func NewService(payments paymentRepo, bookings bookingReader, lifecycle bookingCompleter, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		payments:  payments,
		bookings:  bookings,
		lifecycle: lifecycle,
		loggerf:   loggerf,
	}
}

// OpenPayment creates the PENDING ledger entry for a booking. The amount is
// copied from the booking's frozen total; later rate changes never touch it.
// One payment per booking: a pre-check catches the common case and the unique
// index on booking_id backstops the race.
func (s *Service) OpenPayment(ctx context.Context, p domain.Principal, bookingID string, req OpenPaymentRequest) (*domain.Payment, error) {
	method := domain.PaymentMethod(strings.ToUpper(req.Method))
	if !method.Valid() {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.IsAdmin() && p.UserID != b.CustomerID {
		return nil, ErrForbidden
	}

	if _, err := s.payments.GetByBookingID(ctx, bookingID); err == nil {
		return nil, ErrDuplicatePayment
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	pay := &domain.Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Amount:    b.TotalAmount,
		Method:    method,
		Status:    domain.PaymentPending,
	}
	if err := s.payments.Create(ctx, pay); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicatePayment
		}
		return nil, err
	}
	return pay, nil
}

func (s *Service) GetPayment(ctx context.Context, p domain.Principal, paymentID string) (*domain.Payment, error) {
	pay, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.IsAdmin() {
		return pay, nil
	}
	b, err := s.bookings.GetByID(ctx, pay.BookingID)
	if err != nil {
		return nil, err
	}
	if p.UserID != b.CustomerID {
		return nil, ErrForbidden
	}
	return pay, nil
}

// Reconcile applies one gateway callback to the ledger. The callback status
// string maps to an outcome: "success" completes, anything else fails. The
// ledger transition commits first; only then, on a success outcome, does the
// booking completion cascade. The cascade runs on duplicate deliveries too,
// so a crash between the two writes heals itself on re-delivery.
func (s *Service) Reconcile(ctx context.Context, req CallbackRequest) error {
	to := domain.PaymentFailed
	if strings.EqualFold(req.Status, "success") {
		to = domain.PaymentCompleted
	}

	stored, err := s.payments.GetByID(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}
	if req.Amount != nil && *req.Amount != stored.Amount {
		s.loggerf("level=error msg=gateway amount mismatch payment_id=%s callback_amt=%s expected_amt=%s",
			req.PaymentID, req.Amount.String(), stored.Amount.String())
		return ErrAmountMismatch
	}

	result, pay, err := s.payments.MarkOutcome(ctx, req.PaymentID, req.TransactionID, to)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}

	switch result {
	case repository.OutcomeConflict:
		s.loggerf("level=warn msg=conflicting gateway callback payment_id=%s ref_id=%s status=%s stored_status=%s",
			req.PaymentID, req.TransactionID, req.Status, pay.Status)
		return ErrConflictingCallback
	case repository.OutcomeDuplicate:
		s.loggerf("level=info msg=duplicate gateway callback payment_id=%s ref_id=%s", req.PaymentID, req.TransactionID)
	}

	if to != domain.PaymentCompleted {
		return nil
	}

	if err := s.lifecycle.CompleteBooking(ctx, pay.BookingID); err != nil {
		// A booking cancelled before the callback landed stays cancelled;
		// the payment keeps its committed outcome either way.
		s.loggerf("level=error msg=booking completion after payment failed booking_id=%s payment_id=%s err=%v",
			pay.BookingID, req.PaymentID, err)
	}
	return nil
}
