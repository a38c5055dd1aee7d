package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelreserve/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	tx := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&h, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var hotels []domain.Hotel
	tx := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&hotels)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return hotels, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("id = ? AND deleted_at IS NULL", h.ID).
		Updates(map[string]any{
			"name":        h.Name,
			"description": h.Description,
			"location":    h.Location,
			"updated_at":  time.Now().UTC(),
		}).Error
}

func (r *HotelRepository) SoftDelete(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", &now)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
