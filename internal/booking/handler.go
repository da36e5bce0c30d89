package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfare/internal/flight"
	"skyfare/internal/identity"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	group := router.Group("/v1/bookings", auth)
	group.POST("", h.CreateBookingHandler)
	group.GET("", h.ListBookingsHandler)
}

func (h *Handler) CreateBookingHandler(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	b, err := h.service.Book(c.Request.Context(), identity.UserID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment was declined"})
		case errors.Is(err, flight.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), identity.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
