package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/money"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).First(&room, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("room_number").
		Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}

func (r *RoomRepository) GetNightlyRate(ctx context.Context, roomID int64) (money.Cents, error) {
	var cents int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Select("price_per_night_cents").
		Where("id = ?", roomID).
		First(&cents)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, tx.Error
	}
	return money.Cents(cents), nil
}

// GetHotelOwner resolves the owning manager for a room's hotel.
func (r *RoomRepository) GetHotelOwner(ctx context.Context, roomID int64) (int64, error) {
	var ownerID int64
	q := `
SELECT h.owner_id
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, roomID).Scan(&ownerID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return ownerID, nil
}

func (r *RoomRepository) UpdateNightlyRate(ctx context.Context, roomID int64, rate money.Cents) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", roomID).
		Update("price_per_night_cents", int64(rate))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
