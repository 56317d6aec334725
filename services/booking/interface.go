package booking

import (
	"context"

	bookingRepo "gharseva/database/repository/booking"
	cartRepo "gharseva/database/repository/cart"
	userRepo "gharseva/database/repository/user"
	"gharseva/models"
	"gharseva/services/cart"
	"gharseva/services/notification"
)

// CheckoutRequest is the confirmation payload from the checkout page.
type CheckoutRequest struct {
	Address       string `json:"address" binding:"required"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	TimeSlot      string `json:"timeSlot" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	CouponCode    string `json:"couponCode"`
}

// BookingService turns a cart into a confirmed booking.
type BookingService interface {
	Checkout(ctx context.Context, userID string, req CheckoutRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	CartRepo cartRepo.CartRepository
	UserRepo userRepo.UserRepository
	CartSvc  cart.CartService
	Notifier notification.NotificationService
}
