package flight

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{
		service: s,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/filter", h.FilterFlightsHandler)
	router.GET("/v1/flights/:id", h.GetFlightHandler)
}

func (h *Handler) SearchFlightsHandler(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	flights, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flights":       flights,
		"total_results": len(flights),
	})
}

// FilterFlightsHandler godoc
// @Summary      Filter and sort flight results
// @Description  Apply price range, airline and stop filters plus a sort key
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body FilterRequest true "Filter Criteria"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/filter [post]
func (h *Handler) FilterFlightsHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	flights, err := h.service.Filter(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"flights":       flights,
		"total_results": len(flights),
	})
}

func (h *Handler) GetFlightHandler(c *gin.Context) {
	f, err := h.service.GetFlightByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Flight not found",
				"code":  ErrorCodeNotFound,
			})
			return
		}
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
