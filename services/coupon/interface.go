package coupon

import (
	"context"

	couponRepo "gharseva/database/repository/coupon"
	"gharseva/models"

	"github.com/go-redis/redis/v8"
)

// CouponService validates and manages discount coupons.
type CouponService interface {
	ListActive(ctx context.Context) ([]models.Coupon, error)
	Validate(ctx context.Context, code string, subtotal int) (*models.Coupon, error)
	Create(ctx context.Context, coupon models.Coupon) error
	Delete(ctx context.Context, code string) error
}

// DefaultCouponService implements CouponService with a Redis read-through
// cache in front of the repository, invalidated on admin changes.
type DefaultCouponService struct {
	Repo  couponRepo.CouponRepository
	Cache *redis.Client
}
