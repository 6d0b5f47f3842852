package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/services"
)

// ScratchCouponHandler handles scratch coupon HTTP requests
type ScratchCouponHandler struct {
	scratchService services.ScratchCouponService
}

// NewScratchCouponHandler creates a new ScratchCouponHandler
func NewScratchCouponHandler(scratchService services.ScratchCouponService) *ScratchCouponHandler {
	return &ScratchCouponHandler{scratchService: scratchService}
}

// Issue handles POST /scratch-coupons (admin)
func (h *ScratchCouponHandler) Issue(c *gin.Context) {
	var req models.IssueScratchCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sc, err := h.scratchService.Issue(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sc)
}

// Reveal handles POST /scratch-coupons/:id/reveal (public, triggered by
// the customer's scratch gesture once the client detects the reveal)
func (h *ScratchCouponHandler) Reveal(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	sc, err := h.scratchService.Reveal(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// ListAll handles GET /scratch-coupons (admin)
func (h *ScratchCouponHandler) ListAll(c *gin.Context) {
	scratches, err := h.scratchService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scratches)
}

// Delete handles DELETE /scratch-coupons/:id (admin)
func (h *ScratchCouponHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.scratchService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "scratch coupon deleted"})
}

// DuplicateTemplate handles GET /scratch-coupons/:id/duplicate (admin)
func (h *ScratchCouponHandler) DuplicateTemplate(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	template, err := h.scratchService.DuplicateTemplate(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}
