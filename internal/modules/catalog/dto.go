package catalog

type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
}

type UpdateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
}

// CreateRoomRequest carries the nightly rate as a decimal string
// ("120.00"); it is parsed into integer cents before storage.
type CreateRoomRequest struct {
	RoomNumber    int    `json:"room_number" validate:"required,gt=0"`
	RoomType      string `json:"room_type" validate:"required"`
	Capacity      int    `json:"capacity" validate:"required,gt=0"`
	PricePerNight string `json:"price_per_night" validate:"required"`
}

type UpdateRoomRateRequest struct {
	PricePerNight string `json:"price_per_night" binding:"required"`
}
