package domain

import (
	"time"

	"hotelreserve/internal/pkg/money"
)

type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomSuite  RoomType = "SUITE"
	RoomDeluxe RoomType = "DELUXE"
)

// Room belongs to exactly one hotel; (hotel_id, room_number) is unique.
// IsAvailable is a soft listing flag — actual bookability is derived from
// overlapping bookings, never from this field alone.
type Room struct {
	ID            int64       `json:"id"`
	HotelID       int64       `json:"hotel_id" gorm:"uniqueIndex:idx_hotel_room_number"`
	RoomNumber    int         `json:"room_number" gorm:"uniqueIndex:idx_hotel_room_number" validate:"required,gt=0"`
	RoomType      RoomType    `json:"room_type"`
	Capacity      int         `json:"capacity" validate:"required,gt=0"`
	PricePerNight money.Cents `json:"price_per_night" gorm:"column:price_per_night_cents" validate:"required,gt=0"`
	IsAvailable   bool        `json:"is_available"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
