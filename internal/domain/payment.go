package domain

import (
	"time"

	"hotelreserve/internal/pkg/money"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "CARD"
	MethodEsewa  PaymentMethod = "ESEWA"
	MethodKhalti PaymentMethod = "KHALTI"
	MethodCash   PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCard, MethodEsewa, MethodKhalti, MethodCash:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Terminal() bool { return s != PaymentPending }

// Payment is one-to-one with a booking. Amount is copied from the booking's
// total at open time and is immutable afterwards; a gateway callback only
// ever writes Status and TransactionID.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BookingID     string        `json:"booking_id" gorm:"uniqueIndex;type:varchar(36)"`
	Amount        money.Cents   `json:"amount" gorm:"column:amount_cents"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status" gorm:"index"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
