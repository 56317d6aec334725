package handlers

import (
	"net/http"

	"gharseva/services/coupon"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CouponHandler lists the coupons users can apply at checkout.
type CouponHandler struct {
	CouponSvc coupon.CouponService
	Logger    *zap.Logger
}

// ListActive handles GET /api/coupons.
func (h *CouponHandler) ListActive(c *gin.Context) {
	coupons, err := h.CouponSvc.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListActive: failed to list coupons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list coupons", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

type validateCouponRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int    `json:"subtotal" binding:"required"`
}

// Validate handles POST /api/coupons/validate. It lets the client check a
// code against a subtotal before committing to checkout.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req validateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	cpn, err := h.CouponSvc.Validate(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		writeCouponError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, cpn)
}
