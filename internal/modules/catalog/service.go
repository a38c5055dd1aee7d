package catalog

import (
	"context"
	"errors"
	"strings"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/money"
	"hotelreserve/internal/repository"
)

type Service struct {
	hotels hotelRepo
	rooms  roomRepo
}

func NewService(hotels hotelRepo, rooms roomRepo) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

// canManageHotel is the write-side authorization predicate: admins, or the
// manager who owns this specific hotel. A manager role alone grants nothing.
func canManageHotel(p domain.Principal, h *domain.Hotel) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsManager() && h.OwnerID == p.UserID
}

func (s *Service) CreateHotel(ctx context.Context, p domain.Principal, req CreateHotelRequest) (*domain.Hotel, error) {
	if !p.IsAdmin() && !p.IsManager() {
		return nil, ErrForbidden
	}

	h := &domain.Hotel{
		OwnerID:     p.UserID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) ListHotels(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	return s.hotels.List(ctx, limit, offset)
}

func (s *Service) UpdateHotel(ctx context.Context, p domain.Principal, id int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	h, err := s.GetHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageHotel(p, h) {
		return nil, ErrForbidden
	}

	h.Name = req.Name
	h.Description = req.Description
	h.Location = req.Location
	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) DeleteHotel(ctx context.Context, p domain.Principal, id int64) error {
	h, err := s.GetHotel(ctx, id)
	if err != nil {
		return err
	}
	if !canManageHotel(p, h) {
		return ErrForbidden
	}
	if err := s.hotels.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) CreateRoom(ctx context.Context, p domain.Principal, hotelID int64, req CreateRoomRequest) (*domain.Room, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if !canManageHotel(p, h) {
		return nil, ErrForbidden
	}

	rate, err := money.Parse(req.PricePerNight)
	if err != nil || rate <= 0 {
		return nil, ErrValidation
	}

	roomType := domain.RoomType(strings.ToUpper(req.RoomType))
	switch roomType {
	case domain.RoomSingle, domain.RoomDouble, domain.RoomSuite, domain.RoomDeluxe:
	default:
		return nil, ErrValidation
	}

	room := &domain.Room{
		HotelID:       hotelID,
		RoomNumber:    req.RoomNumber,
		RoomType:      roomType,
		Capacity:      req.Capacity,
		PricePerNight: rate,
		IsAvailable:   true,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateRoom
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID)
}

// UpdateRoomRate changes the nightly rate going forward. Existing bookings
// keep the total frozen at creation time.
func (s *Service) UpdateRoomRate(ctx context.Context, p domain.Principal, roomID int64, req UpdateRoomRateRequest) (*domain.Room, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	h, err := s.GetHotel(ctx, room.HotelID)
	if err != nil {
		return nil, err
	}
	if !canManageHotel(p, h) {
		return nil, ErrForbidden
	}

	rate, err := money.Parse(req.PricePerNight)
	if err != nil || rate <= 0 {
		return nil, ErrValidation
	}

	if err := s.rooms.UpdateNightlyRate(ctx, roomID, rate); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	room.PricePerNight = rate
	return room, nil
}
