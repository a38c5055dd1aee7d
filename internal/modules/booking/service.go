package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/money"
	"hotelreserve/internal/repository"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
	}
}

// CreateBooking validates the date range, prices the stay off the room's
// current nightly rate and persists a PENDING booking. Nights and the total
// are frozen here; nothing recomputes them later. The availability check and
// the insert run as one atomic unit scoped to the room (see the repository),
// so a concurrent overlapping attempt loses with ErrRoomUnavailable.
func (s *Service) CreateBooking(ctx context.Context, p domain.Principal, req CreateBookingRequest) (*domain.Booking, error) {
	checkin, checkout, err := parseStayDates(req.CheckedInDate, req.CheckedOutDate)
	if err != nil {
		return nil, err
	}

	rate, err := s.rooms.GetNightlyRate(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Fast-path check; the authoritative one runs under the room lock.
	ok, err := s.bookings.IsAvailable(ctx, req.RoomID, checkin, checkout)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomUnavailable
	}

	nights, total := quote(rate, checkin, checkout)

	b := &domain.Booking{
		ID:             uuid.NewString(),
		RoomID:         req.RoomID,
		CustomerID:     p.UserID,
		Status:         domain.BookingPending,
		CheckedInDate:  checkin,
		CheckedOutDate: checkout,
		Nights:         nights,
		TotalAmount:    total,
	}

	if err := s.bookings.CreateWithAvailabilityCheck(ctx, b); err != nil {
		if errors.Is(err, repository.ErrRoomOverlap) || repository.IsUniqueViolation(err) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	return b, nil
}

// CancelBooking moves a PENDING booking to CANCELLED. Allowed actors: the
// booking's customer, the manager owning the hotel, or an admin.
func (s *Service) CancelBooking(ctx context.Context, p domain.Principal, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed, err := s.canCancel(ctx, p, b)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if b.Status.Terminal() {
		return nil, ErrInvalidTransition
	}

	applied, err := s.bookings.UpdateStatusIf(ctx, bookingID, domain.BookingPending, domain.BookingCancelled)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost a race against completion or another cancel.
		return nil, ErrInvalidTransition
	}

	b.Status = domain.BookingCancelled
	return b, nil
}

// canCancel is the cancellation authorization predicate. Manager authority
// is scoped to hotels the manager owns, never hotels in general.
func (s *Service) canCancel(ctx context.Context, p domain.Principal, b *domain.Booking) (bool, error) {
	if p.IsAdmin() || p.UserID == b.CustomerID {
		return true, nil
	}
	if !p.IsManager() {
		return false, nil
	}
	ownerID, err := s.bookings.GetHotelOwnerForBooking(ctx, b.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return ownerID == p.UserID, nil
}

// CompleteBooking is invoked by the payment reconciler only. The transition
// is a compare-and-set out of PENDING; completing an already-COMPLETED
// booking is a no-op so callback re-delivery stays idempotent.
func (s *Service) CompleteBooking(ctx context.Context, bookingID string) error {
	applied, err := s.bookings.UpdateStatusIf(ctx, bookingID, domain.BookingPending, domain.BookingCompleted)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.Status == domain.BookingCompleted {
		return nil
	}
	return ErrInvalidTransition
}

// GetBooking returns the booking if the principal may see it: its customer,
// the owning manager, or an admin.
func (s *Service) GetBooking(ctx context.Context, p domain.Principal, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed, err := s.canCancel(ctx, p, b)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, customerID int64, limit, offset int) ([]BookingDetails, error) {
	rows, err := s.bookings.GetCustomerBookingsWithDetails(ctx, customerID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingDetails{
			ID:             r.ID,
			Status:         r.Status,
			CheckedInDate:  r.CheckedInDate.Format(dateLayout),
			CheckedOutDate: r.CheckedOutDate.Format(dateLayout),
			Nights:         r.Nights,
			TotalAmount:    money.Cents(r.TotalAmountCents),
			RoomID:         r.RoomID,
			RoomNumber:     r.RoomNumber,
			HotelID:        r.HotelID,
			HotelName:      r.HotelName,
		})
	}
	return out, nil
}

// CheckAvailability answers the read-only availability question for a room
// and date range. CANCELLED bookings never block.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkinStr, checkoutStr string) (*AvailabilityResponse, error) {
	checkin, checkout, err := parseStayDates(checkinStr, checkoutStr)
	if err != nil {
		return nil, err
	}

	ok, err := s.bookings.IsAvailable(ctx, roomID, checkin, checkout)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResponse{
		RoomID:         roomID,
		CheckedInDate:  checkinStr,
		CheckedOutDate: checkoutStr,
		Available:      ok,
	}, nil
}
