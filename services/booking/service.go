package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gharseva/models"
	"gharseva/services/cart"
	"gharseva/utils"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errors.New("booking not found")

// Checkout freezes the current cart into a booking. The price summary is
// computed once here and stored on the booking, so later catalog or coupon
// edits cannot change what the user agreed to pay.
func (s *DefaultBookingService) Checkout(ctx context.Context, userID string, req CheckoutRequest) (*models.Booking, error) {
	logger := utils.GetLogger().Sugar()

	crt, err := s.CartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if crt == nil || len(crt.Items) == 0 {
		return nil, cart.ErrCartEmpty
	}

	summary, err := s.CartSvc.Summary(ctx, userID, req.CouponCode)
	if err != nil {
		return nil, err
	}

	bk := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        userID,
		Items:         crt.Items,
		AddOns:        crt.AddOns,
		Address:       req.Address,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		PaymentMethod: req.PaymentMethod,
		Summary:       *summary,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     time.Now(),
	}
	if _, err := s.Repo.Create(ctx, *bk); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if summary.CoinsEarned > 0 {
		if err := s.UserRepo.CreditCoins(ctx, userID, summary.CoinsEarned); err != nil {
			logger.Warnw("checkout: failed to credit loyalty coins", "userID", userID, "coins", summary.CoinsEarned, "error", err)
		}
	}

	if err := s.CartRepo.ClearByUserID(ctx, userID); err != nil {
		logger.Warnw("checkout: failed to clear cart", "userID", userID, "error", err)
	}

	if s.Notifier != nil {
		body := fmt.Sprintf("Your booking for %s, %s is confirmed. Total ₹%d.", req.Date, req.TimeSlot, summary.Total)
		if err := s.Notifier.SendUserPushNotification(ctx, userID, "Booking confirmed", body); err != nil {
			logger.Warnw("checkout: failed to push booking confirmation", "bookingID", bk.ID, "userID", userID, "error", err)
		}
	}

	logger.Infow("booking confirmed", "bookingID", bk.ID, "userID", userID, "total", summary.Total)
	return bk, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	bk, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if bk == nil {
		return nil, ErrBookingNotFound
	}
	return bk, nil
}

func (s *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) error {
	bk, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if bk == nil {
		return ErrBookingNotFound
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	utils.GetLogger().Sugar().Infow("booking cancelled", "bookingID", id)
	return nil
}

var _ BookingService = (*DefaultBookingService)(nil)
