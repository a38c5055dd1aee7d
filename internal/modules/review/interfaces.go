package review

import (
	"context"

	"hotelreserve/internal/domain"
)

type reviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

type hotelReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// stayChecker answers whether the customer ever completed a stay at the
// hotel. Implemented by the booking repository.
type stayChecker interface {
	HasCompletedBookingForHotel(ctx context.Context, customerID, hotelID int64) (bool, error)
}
