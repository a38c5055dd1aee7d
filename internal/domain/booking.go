package domain

import (
	"time"

	"hotelreserve/internal/pkg/money"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Terminal reports whether no further status transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Booking holds a room for the half-open date range
// [CheckedInDate, CheckedOutDate). Nights and TotalAmount are derived from
// the dates and the room's nightly rate once, at creation, and are never
// recomputed — a later room price change does not touch existing bookings.
type Booking struct {
	ID             string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RoomID         int64         `json:"room_id" gorm:"index"`
	CustomerID     int64         `json:"customer_id" gorm:"index"`
	Status         BookingStatus `json:"status" gorm:"index"`
	CheckedInDate  time.Time     `json:"checked_in_date"`
	CheckedOutDate time.Time     `json:"checked_out_date"`
	Nights         int           `json:"nights"`
	TotalAmount    money.Cents   `json:"total_amount" gorm:"column:total_amount_cents"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Payment *Payment `json:"payment,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
