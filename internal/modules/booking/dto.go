package booking

import "hotelreserve/internal/pkg/money"

type CreateBookingRequest struct {
	RoomID         int64  `json:"room_id" binding:"required"`
	CheckedInDate  string `json:"checked_in_date" binding:"required"`
	CheckedOutDate string `json:"checked_out_date" binding:"required"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingDetails struct {
	ID             string      `json:"id"`
	Status         string      `json:"status"`
	CheckedInDate  string      `json:"checked_in_date"`
	CheckedOutDate string      `json:"checked_out_date"`
	Nights         int         `json:"nights"`
	TotalAmount    money.Cents `json:"total_amount"`

	RoomID     int64 `json:"room_id"`
	RoomNumber int   `json:"room_number"`

	HotelID   int64  `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
}

type AvailabilityResponse struct {
	RoomID         int64  `json:"room_id"`
	CheckedInDate  string `json:"checked_in_date"`
	CheckedOutDate string `json:"checked_out_date"`
	Available      bool   `json:"available"`
}
