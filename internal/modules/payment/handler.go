package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/middleware"
	"hotelreserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the authenticated ledger endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/payments", h.OpenPayment)
	rg.GET("/payments/:id", h.GetPayment)
}

// RegisterGatewayRoutes registers the gateway-facing callback endpoint.
// Responses here follow the gateway's expected shapes, not the API envelope.
func (h *Handler) RegisterGatewayRoutes(rg *gin.RouterGroup) {
	rg.POST("/gateway/callback", h.GatewayCallback)
}

// OpenPayment godoc
// @Summary      Open a payment for a booking
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string             true "Booking ID"
// @Param        body body OpenPaymentRequest true "Payment payload"
// @Success      201 {object} domain.Payment
// @Router       /bookings/{id}/payments [post]
func (h *Handler) OpenPayment(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req OpenPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pay, err := h.service.OpenPayment(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": pay})
}

func (h *Handler) GetPayment(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	pay, err := h.service.GetPayment(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": pay})
}

// GatewayCallback godoc
// @Summary      Payment gateway result callback
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body CallbackRequest true "Gateway callback payload"
// @Success      200 {object} map[string]string
// @Router       /gateway/callback [post]
func (h *Handler) GatewayCallback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback payload"})
		return
	}

	switch err := h.service.Reconcile(c.Request.Context(), req); {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Payment updated"})
	case err == ErrPaymentNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
	case err == ErrAmountMismatch:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount mismatch"})
	case err == ErrConflictingCallback:
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting callback"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case err == ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request")
	case err == ErrDuplicatePayment:
		response.Error(c, http.StatusConflict, "DUPLICATE_PAYMENT", "Booking already has a payment")
	case err == ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not act on this payment")
	case err == ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or payment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
