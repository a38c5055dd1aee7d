package booking

import (
	"context"
	"time"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/money"
	"hotelreserve/internal/repository"
)

// BookingRepository is the persistence surface the lifecycle manager needs.
type BookingRepository interface {
	IsAvailable(ctx context.Context, roomID int64, checkin, checkout time.Time) (bool, error)
	CreateWithAvailabilityCheck(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatusIf(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error)
	GetHotelOwnerForBooking(ctx context.Context, bookingID string) (int64, error)
	GetCustomerBookingsWithDetails(ctx context.Context, customerID int64, limit, offset int) ([]repository.CustomerBookingRow, error)
}

// RoomRepository resolves room pricing and ownership.
type RoomRepository interface {
	GetNightlyRate(ctx context.Context, roomID int64) (money.Cents, error)
}
