package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/services"
)

// AuthHandler handles admin authentication HTTP requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
