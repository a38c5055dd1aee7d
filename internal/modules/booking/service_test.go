package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/money"
	"hotelreserve/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) IsAvailable(ctx context.Context, roomID int64, checkin, checkout time.Time) (bool, error) {
	args := m.Called(ctx, roomID, checkin, checkout)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CreateWithAvailabilityCheck(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusIf(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) GetHotelOwnerForBooking(ctx context.Context, bookingID string) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) GetCustomerBookingsWithDetails(ctx context.Context, customerID int64, limit, offset int) ([]repository.CustomerBookingRow, error) {
	args := m.Called(ctx, customerID, limit, offset)
	return args.Get(0).([]repository.CustomerBookingRow), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetNightlyRate(ctx context.Context, roomID int64) (money.Cents, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(money.Cents), args.Error(1)
}

var customer = domain.Principal{UserID: 42, Role: domain.RoleCustomer}

func TestCreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	// 300.00 per night, 3 nights
	mockRooms.On("GetNightlyRate", mock.Anything, int64(10)).Return(money.Cents(30000), nil)
	mockBookings.On("IsAvailable", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(true, nil)
	mockBookings.On("CreateWithAvailabilityCheck", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms)

	b, err := service.CreateBooking(context.Background(), customer, CreateBookingRequest{
		RoomID:         10,
		CheckedInDate:  "2026-10-01",
		CheckedOutDate: "2026-10-04",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, money.Cents(90000), b.TotalAmount)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(42), b.CustomerID)
	assert.NotEmpty(t, b.ID)
}

func TestCreateBooking_InvalidDateRange(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := service.CreateBooking(context.Background(), customer, CreateBookingRequest{
		RoomID:         10,
		CheckedInDate:  "2026-10-04",
		CheckedOutDate: "2026-10-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Zero-night stay is equally invalid.
	_, err = service.CreateBooking(context.Background(), customer, CreateBookingRequest{
		RoomID:         10,
		CheckedInDate:  "2026-10-01",
		CheckedOutDate: "2026-10-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateBooking_MalformedDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := service.CreateBooking(context.Background(), customer, CreateBookingRequest{
		RoomID:         10,
		CheckedInDate:  "01-10-2026",
		CheckedOutDate: "2026-10-04",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_RoomUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetNightlyRate", mock.Anything, int64(10)).Return(money.Cents(30000), nil)
	mockBookings.On("IsAvailable", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CreateBooking(context.Background(), customer, CreateBookingRequest{
		RoomID:         10,
		CheckedInDate:  "2026-10-01",
		CheckedOutDate: "2026-10-04",
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestCreateBooking_LosesConcurrentRace(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetNightlyRate", mock.Anything, int64(10)).Return(money.Cents(30000), nil)
	// Fast path says free, but the locked re-check inside the transaction
	// finds the winner's row.
	mockBookings.On("IsAvailable", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(true, nil)
	mockBookings.On("CreateWithAvailabilityCheck", mock.Anything, mock.Anything).Return(repository.ErrRoomOverlap)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CreateBooking(context.Background(), customer, CreateBookingRequest{
		RoomID:         10,
		CheckedInDate:  "2026-10-01",
		CheckedOutDate: "2026-10-04",
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetNightlyRate", mock.Anything, int64(99)).Return(money.Cents(0), repository.ErrNotFound)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CreateBooking(context.Background(), customer, CreateBookingRequest{
		RoomID:         99,
		CheckedInDate:  "2026-10-01",
		CheckedOutDate: "2026-10-04",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func pendingBooking(id string, customerID int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		RoomID:     10,
		CustomerID: customerID,
		Status:     domain.BookingPending,
	}
}

func TestCancelBooking_ByCustomer(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByID", mock.Anything, "b-1").Return(pendingBooking("b-1", 42), nil)
	mockBookings.On("UpdateStatusIf", mock.Anything, "b-1", domain.BookingPending, domain.BookingCancelled).Return(true, nil)

	service := NewService(mockBookings, mockRooms)

	b, err := service.CancelBooking(context.Background(), customer, "b-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestCancelBooking_ManagerScopedToOwnedHotel(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	owner := domain.Principal{UserID: 7, Role: domain.RoleManager}
	stranger := domain.Principal{UserID: 8, Role: domain.RoleManager}

	mockBookings.On("GetByID", mock.Anything, "b-1").Return(pendingBooking("b-1", 42), nil)
	mockBookings.On("GetHotelOwnerForBooking", mock.Anything, "b-1").Return(int64(7), nil)
	mockBookings.On("UpdateStatusIf", mock.Anything, "b-1", domain.BookingPending, domain.BookingCancelled).Return(true, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CancelBooking(context.Background(), owner, "b-1")
	assert.NoError(t, err)

	// A manager of some other hotel has no authority here.
	_, err = service.CancelBooking(context.Background(), stranger, "b-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelBooking_TerminalStates(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	done := pendingBooking("b-2", 42)
	done.Status = domain.BookingCompleted
	mockBookings.On("GetByID", mock.Anything, "b-2").Return(done, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CancelBooking(context.Background(), customer, "b-2")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelBooking_LostRace(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByID", mock.Anything, "b-3").Return(pendingBooking("b-3", 42), nil)
	// Booking read as PENDING, but the CAS loses to a concurrent completion.
	mockBookings.On("UpdateStatusIf", mock.Anything, "b-3", domain.BookingPending, domain.BookingCancelled).Return(false, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CancelBooking(context.Background(), customer, "b-3")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteBooking_Idempotent(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	// CAS misses, but the booking is already COMPLETED: treated as a no-op.
	mockBookings.On("UpdateStatusIf", mock.Anything, "b-4", domain.BookingPending, domain.BookingCompleted).Return(false, nil)
	already := pendingBooking("b-4", 42)
	already.Status = domain.BookingCompleted
	mockBookings.On("GetByID", mock.Anything, "b-4").Return(already, nil)

	service := NewService(mockBookings, mockRooms)

	assert.NoError(t, service.CompleteBooking(context.Background(), "b-4"))
}

func TestCompleteBooking_FromCancelled(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("UpdateStatusIf", mock.Anything, "b-5", domain.BookingPending, domain.BookingCompleted).Return(false, nil)
	cancelled := pendingBooking("b-5", 42)
	cancelled.Status = domain.BookingCancelled
	mockBookings.On("GetByID", mock.Anything, "b-5").Return(cancelled, nil)

	service := NewService(mockBookings, mockRooms)

	err := service.CompleteBooking(context.Background(), "b-5")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCheckAvailability(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("IsAvailable", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(true, nil)

	service := NewService(mockBookings, mockRooms)

	res, err := service.CheckAvailability(context.Background(), 10, "2026-10-01", "2026-10-04")
	assert.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, int64(10), res.RoomID)

	_, err = service.CheckAvailability(context.Background(), 10, "2026-10-04", "2026-10-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
