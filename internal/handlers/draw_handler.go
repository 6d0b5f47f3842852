package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/supermax-promo/cupom-backend/internal/services"
)

// DrawHandler handles raffle draw and winner history HTTP requests
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: drawService}
}

// RunDraw handles POST /draws (admin)
func (h *DrawHandler) RunDraw(c *gin.Context) {
	winner, err := h.drawService.DrawWinner(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, winner)
}

// ListWinners handles GET /winners (admin)
func (h *DrawHandler) ListWinners(c *gin.Context) {
	winners, err := h.drawService.ListWinners(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, winners)
}

// DeleteWinner handles DELETE /winners/:id (admin)
func (h *DrawHandler) DeleteWinner(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.drawService.DeleteWinner(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "winner deleted"})
}

// DeleteAllWinners handles DELETE /winners (admin)
func (h *DrawHandler) DeleteAllWinners(c *gin.Context) {
	deleted, err := h.drawService.DeleteAllWinners(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
