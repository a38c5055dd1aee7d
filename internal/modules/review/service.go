package review

import (
	"context"
	"errors"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/repository"
)

type Service struct {
	reviews reviewRepo
	hotels  hotelReader
	stays   stayChecker
}

func NewService(reviews reviewRepo, hotels hotelReader, stays stayChecker) *Service {
	return &Service{reviews: reviews, hotels: hotels, stays: stays}
}

// CreateReview posts a review for a hotel. Only customers who completed a
// stay at the hotel may review it.
func (s *Service) CreateReview(ctx context.Context, p domain.Principal, hotelID int64, req CreateReviewRequest) (*domain.Review, error) {
	if !p.IsCustomer() {
		return nil, ErrForbidden
	}

	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stayed, err := s.stays.HasCompletedBookingForHotel(ctx, p.UserID, hotelID)
	if err != nil {
		return nil, err
	}
	if !stayed {
		return nil, ErrNoStay
	}

	rv := &domain.Review{
		HotelID: hotelID,
		RoomID:  req.RoomID,
		UserID:  p.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListHotelReviews(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Review, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.reviews.ListByHotel(ctx, hotelID, limit, offset)
}

// DeleteReview removes a review. Allowed for its author or an admin.
func (s *Service) DeleteReview(ctx context.Context, p domain.Principal, reviewID int64) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !p.IsAdmin() && p.UserID != rv.UserID {
		return ErrForbidden
	}
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
