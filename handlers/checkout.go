package handlers

import (
	"errors"
	"net/http"

	"gharseva/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler confirms bookings and serves booking history.
type CheckoutHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// Checkout handles POST /api/checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req booking.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	bk, err := h.BookingSvc.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		writeCouponError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// GetBooking handles GET /api/bookings/:id.
func (h *CheckoutHandler) GetBooking(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	bk, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("GetBooking: failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking", "message": err.Error()})
		return
	}
	if bk.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListBookings handles GET /api/bookings.
func (h *CheckoutHandler) ListBookings(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	bookings, err := h.BookingSvc.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("ListBookings: failed to fetch bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *CheckoutHandler) CancelBooking(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	bk, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("CancelBooking: failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking", "message": err.Error()})
		return
	}
	if bk.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}

	if err := h.BookingSvc.CancelBooking(c.Request.Context(), bk.ID); err != nil {
		h.Logger.Error("CancelBooking: failed to cancel", zap.String("bookingID", bk.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
