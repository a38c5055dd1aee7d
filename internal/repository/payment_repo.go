package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelreserve/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create persists a new payment. The unique index on booking_id is the
// backstop against two payments being opened for the same booking.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&p)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&p)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &p, nil
}

// OutcomeResult describes what a MarkOutcome call did to the payment row.
type OutcomeResult int

const (
	// OutcomeApplied: payment left PENDING, status + transaction id written.
	OutcomeApplied OutcomeResult = iota
	// OutcomeDuplicate: payment already terminal and the callback carried
	// the same transaction id and outcome; nothing was written.
	OutcomeDuplicate
	// OutcomeConflict: payment already terminal but the callback disagrees
	// (different transaction id or opposite outcome); nothing was written.
	OutcomeConflict
)

// MarkOutcome transitions the payment out of PENDING exactly once. The row
// is locked FOR UPDATE so concurrent duplicate deliveries of the same
// gateway callback serialize; only the first writes, the rest classify as
// duplicate or conflict against the committed state.
func (r *PaymentRepository) MarkOutcome(ctx context.Context, paymentID, transactionID string, to domain.PaymentStatus) (OutcomeResult, *domain.Payment, error) {
	var result OutcomeResult
	var payment domain.Payment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", paymentID).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if payment.Status.Terminal() {
			if payment.Status == to &&
				payment.TransactionID != nil && *payment.TransactionID == transactionID {
				result = OutcomeDuplicate
				return nil
			}
			result = OutcomeConflict
			return nil
		}

		res := tx.Model(&domain.Payment{}).
			Where("id = ? AND status = ?", paymentID, domain.PaymentPending).
			Updates(map[string]any{
				"status":         to,
				"transaction_id": transactionID,
				"updated_at":     time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("payment row not updated")
		}

		payment.Status = to
		payment.TransactionID = &transactionID
		result = OutcomeApplied
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return result, &payment, nil
}
