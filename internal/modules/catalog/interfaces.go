package catalog

import (
	"context"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/money"
)

type hotelRepo interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, limit, offset int) ([]domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	SoftDelete(ctx context.Context, id int64) error
}

type roomRepo interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	UpdateNightlyRate(ctx context.Context, roomID int64, rate money.Cents) error
}
