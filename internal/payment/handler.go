package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authorizer Authorizer
}

func NewHandler(a Authorizer) *Handler {
	return &Handler{authorizer: a}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	router.POST("/v1/payments/intent", auth, h.CreateIntentHandler)
}

type createIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (h *Handler) CreateIntentHandler(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	intent, err := h.authorizer.CreateIntent(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, intent)
}
