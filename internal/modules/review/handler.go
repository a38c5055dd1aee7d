package review

import (
	"net/http"
	"strconv"

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels/:id/reviews", h.ListHotelReviews)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels/:id/reviews", h.CreateReview)
	rg.DELETE("/reviews/:id", h.DeleteReview)
}

// CreateReview godoc
// @Summary      Review a hotel after a completed stay
// @Tags         Reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path integer             true "Hotel ID"
// @Param        body body CreateReviewRequest true "Review payload"
// @Success      201 {object} domain.Review
// @Router       /hotels/{id}/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.CreateReview(c.Request.Context(), p, hotelID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) ListHotelReviews(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.service.ListHotelReviews(c.Request.Context(), hotelID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), p, reviewID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case err == ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review request")
	case err == ErrNoStay:
		response.Error(c, http.StatusForbidden, "NO_COMPLETED_STAY", "A completed stay at this hotel is required to review it")
	case err == ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not act on this review")
	case err == ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel or review not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
