package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelreserve/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// blockingStatuses are the booking states that hold a room. CANCELLED
// bookings never block availability.
var blockingStatuses = []domain.BookingStatus{
	domain.BookingPending,
	domain.BookingCompleted,
}

func overlapScope(db *gorm.DB, roomID int64, checkin, checkout time.Time) *gorm.DB {
	// Half-open ranges [a1,b1) and [a2,b2) overlap iff a1 < b2 && a2 < b1.
	return db.
		Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", blockingStatuses).
		Where("checked_in_date < ? AND checked_out_date > ?", checkout, checkin)
}

// IsAvailable answers whether the room is free for [checkin, checkout).
// Pure query; the authoritative check happens again inside
// CreateWithAvailabilityCheck under the room lock.
func (r *BookingRepository) IsAvailable(ctx context.Context, roomID int64, checkin, checkout time.Time) (bool, error) {
	var cnt int64
	err := overlapScope(r.db.WithContext(ctx), roomID, checkin, checkout).Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// CreateWithAvailabilityCheck inserts the booking atomically with respect to
// concurrent attempts on the same room: the room row is locked FOR UPDATE
// for the duration of the re-check + insert, so two racing requests for
// overlapping ranges serialize and the loser gets ErrRoomOverlap.
// (SQLite has no FOR UPDATE; its single-writer model gives the same
// serialization.)
func (r *BookingRepository) CreateWithAvailabilityCheck(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, b.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var cnt int64
		if err := overlapScope(tx, b.RoomID, b.CheckedInDate, b.CheckedOutDate).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRoomOverlap
		}

		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&b)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &b, nil
}

// UpdateStatusIf performs a compare-and-set on the booking status. It
// reports whether the transition was applied; false with a nil error means
// the booking was not in the expected source state.
func (r *BookingRepository) UpdateStatusIf(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// GetHotelOwnerForBooking resolves the manager owning the hotel the booked
// room belongs to.
func (r *BookingRepository) GetHotelOwnerForBooking(ctx context.Context, bookingID string) (int64, error) {
	var ownerID int64
	q := `
SELECT h.owner_id
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = r.hotel_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&ownerID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return ownerID, nil
}

type CustomerBookingRow struct {
	ID               string    `gorm:"column:id"`
	Status           string    `gorm:"column:status"`
	CheckedInDate    time.Time `gorm:"column:checked_in_date"`
	CheckedOutDate   time.Time `gorm:"column:checked_out_date"`
	Nights           int       `gorm:"column:nights"`
	TotalAmountCents int64     `gorm:"column:total_amount_cents"`

	RoomID     int64 `gorm:"column:room_id"`
	RoomNumber int   `gorm:"column:room_number"`

	HotelID   int64  `gorm:"column:hotel_id"`
	HotelName string `gorm:"column:hotel_name"`
}

func (r *BookingRepository) GetCustomerBookingsWithDetails(ctx context.Context, customerID int64, limit, offset int) ([]CustomerBookingRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []CustomerBookingRow
	q := `
SELECT
  b.id,
  b.status,
  b.checked_in_date,
  b.checked_out_date,
  b.nights,
  b.total_amount_cents,
  b.room_id,
  rm.room_number,
  rm.hotel_id,
  h.name AS hotel_name
FROM bookings b
JOIN rooms rm ON rm.id = b.room_id
JOIN hotels h ON h.id = rm.hotel_id
WHERE b.customer_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, customerID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) HasCompletedBookingForHotel(ctx context.Context, customerID, hotelID int64) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings b
JOIN rooms rm ON rm.id = b.room_id
WHERE b.customer_id = ?
  AND rm.hotel_id = ?
  AND b.status = ?
`
	tx := r.db.WithContext(ctx).Raw(q, customerID, hotelID, domain.BookingCompleted).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
