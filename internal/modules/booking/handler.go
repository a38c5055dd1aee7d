package booking

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/middleware"
	"hotelreserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the authenticated booking endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", middleware.RequireRole(domain.RoleCustomer), h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id", h.UpdateBooking)
	rg.GET("/users/me/bookings", h.GetMyBookings)
}

// RegisterPublicRoutes registers the unauthenticated read endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/availability", h.GetRoomAvailability)
}

// CreateBooking godoc
// @Summary      Book a room for a date range
// @Tags         Bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreateBookingRequest true "Booking payload"
// @Success      201 {object} domain.Booking
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), p, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// UpdateBooking handles PATCH /bookings/:id. Cancellation is the only
// status change a client may request; completion belongs to the payment
// reconciler.
func (h *Handler) UpdateBooking(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if !strings.EqualFold(req.Status, string(domain.BookingCancelled)) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Only a CANCELLED status may be requested")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.GetMyBookings(c.Request.Context(), p.UserID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

// GetRoomAvailability godoc
// @Summary      Check room availability for a date range
// @Tags         Bookings
// @Produce      json
// @Param        id path integer true "Room ID"
// @Param        checkin query string true "Check-in date (YYYY-MM-DD)"
// @Param        checkout query string true "Check-out date (YYYY-MM-DD)"
// @Success      200 {object} AvailabilityResponse
// @Router       /rooms/{id}/availability [get]
func (h *Handler) GetRoomAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	res, err := h.service.CheckAvailability(c.Request.Context(), roomID, c.Query("checkin"), c.Query("checkout"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case err == ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case err == ErrInvalidDateRange:
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out date must be after check-in date")
	case err == ErrRoomUnavailable:
		response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for the selected dates")
	case err == ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status does not allow this transition")
	case err == ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not act on this booking")
	case err == ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or room not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
