package handlers

import (
	"errors"
	"net/http"

	"gharseva/models"
	"gharseva/services/cart"
	"gharseva/services/coupon"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the per-user cart.
type CartHandler struct {
	CartSvc cart.CartService
	Logger  *zap.Logger
}

func authedUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID.(string), true
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	crt, err := h.CartSvc.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("GetCart: failed to load cart", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crt)
}

type cartItemRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	h.addLine(c, false)
}

// AddPackage handles POST /api/cart/packages.
func (h *CartHandler) AddPackage(c *gin.Context) {
	h.addLine(c, true)
}

func (h *CartHandler) addLine(c *gin.Context, isPackage bool) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	var (
		crt *models.Cart
		err error
	)
	if isPackage {
		crt, err = h.CartSvc.AddPackage(c.Request.Context(), userID, req.ServiceID)
	} else {
		crt, err = h.CartSvc.AddItem(c.Request.Context(), userID, req.ServiceID)
	}
	if err != nil {
		if errors.Is(err, cart.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found", "message": err.Error()})
			return
		}
		h.Logger.Error("addLine: failed to add cart line",
			zap.String("userID", userID), zap.String("serviceID", req.ServiceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crt)
}

// RemoveItem handles DELETE /api/cart/items/:serviceId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	crt, err := h.CartSvc.RemoveItem(c.Request.Context(), userID, c.Param("serviceId"))
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart", "message": err.Error()})
			return
		}
		h.Logger.Error("RemoveItem: failed to remove cart line", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crt)
}

// DecrementItem handles POST /api/cart/items/:serviceId/decrement.
func (h *CartHandler) DecrementItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	crt, err := h.CartSvc.DecrementItem(c.Request.Context(), userID, c.Param("serviceId"))
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart", "message": err.Error()})
			return
		}
		h.Logger.Error("DecrementItem: failed to decrement cart line", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crt)
}

type addOnsRequest struct {
	AddOns []models.AddOn `json:"addOns" binding:"required"`
}

// SetAddOns handles PUT /api/cart/addons.
func (h *CartHandler) SetAddOns(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req addOnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	crt, err := h.CartSvc.SetAddOns(c.Request.Context(), userID, req.AddOns)
	if err != nil {
		h.Logger.Error("SetAddOns: failed to set add-ons", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crt)
}

// GetSummary handles GET /api/cart/summary?coupon=CODE.
func (h *CartHandler) GetSummary(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	summary, err := h.CartSvc.Summary(c.Request.Context(), userID, c.Query("coupon"))
	if err != nil {
		writeCouponError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// writeCouponError maps coupon validation failures to 4xx responses and
// everything else to a 500. Shared with the checkout handler, where the same
// coupon is validated a second time.
func writeCouponError(c *gin.Context, logger *zap.Logger, err error) {
	var minOrderErr coupon.MinOrderError
	switch {
	case errors.As(err, &minOrderErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     "minimum order value not met",
			"message":   minOrderErr.Error(),
			"shortfall": minOrderErr.Shortfall(),
		})
	case errors.Is(err, coupon.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "coupon not found", "message": err.Error()})
	case errors.Is(err, coupon.ErrCouponInactive), errors.Is(err, coupon.ErrCouponExpired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "coupon not usable", "message": err.Error()})
	case errors.Is(err, cart.ErrCartEmpty):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty", "message": err.Error()})
	default:
		logger.Error("coupon/summary error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary", "message": err.Error()})
	}
}
