package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id" gorm:"index"`
	RoomID    *int64    `json:"room_id,omitempty"`
	UserID    int64     `json:"user_id" gorm:"index"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
