package domain

import "time"

type Hotel struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"owner_id" gorm:"index"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`

	Rooms []Room `json:"rooms,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
