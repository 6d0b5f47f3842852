package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supermax-promo/cupom-backend/internal/models"
	"github.com/supermax-promo/cupom-backend/internal/services"
)

// CouponHandler handles registration and lookup HTTP requests
type CouponHandler struct {
	couponService services.CouponService
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(couponService services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Register handles POST /coupons
func (h *CouponHandler) Register(c *gin.Context) {
	var req models.RegisterCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := h.couponService.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// Lookup handles GET /coupons/cpf/:cpf. A cpf with no records gets an
// empty result, not a 404; the page renders the "not found" state.
func (h *CouponHandler) Lookup(c *gin.Context) {
	result, err := h.couponService.FindByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListAll handles GET /coupons (admin)
func (h *CouponHandler) ListAll(c *gin.Context) {
	coupons, err := h.couponService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// Count handles GET /coupons/count (admin)
func (h *CouponHandler) Count(c *gin.Context) {
	count, err := h.couponService.Count(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
