package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/services"
)

// SettingsHandler handles campaign settings HTTP requests
type SettingsHandler struct {
	settingsService services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /settings (public, feeds the countdown and the
// value-per-coupon hint on the registration form)
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /settings (admin)
func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), &req, c.GetString("adminSubject"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
