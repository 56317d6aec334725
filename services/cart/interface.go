package cart

import (
	"context"

	cartRepo "gharseva/database/repository/cart"
	catalogRepo "gharseva/database/repository/catalog"
	"gharseva/models"
	"gharseva/services/coupon"
)

// CartService manages per-user carts and produces checkout summaries.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, userID, serviceID string) (*models.Cart, error)
	AddPackage(ctx context.Context, userID, serviceID string) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, serviceID string) (*models.Cart, error)
	DecrementItem(ctx context.Context, userID, serviceID string) (*models.Cart, error)
	SetAddOns(ctx context.Context, userID string, addOns []models.AddOn) (*models.Cart, error)
	Summary(ctx context.Context, userID, couponCode string) (*models.CartSummary, error)
}

// DefaultCartService implements CartService.
type DefaultCartService struct {
	Repo        cartRepo.CartRepository
	CatalogRepo catalogRepo.ServiceRepository
	CouponSvc   coupon.CouponService
}
