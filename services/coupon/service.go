package coupon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gharseva/models"
	"gharseva/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func couponKey(code string) string {
	return utils.CouponCachePrefix + strings.ToUpper(strings.TrimSpace(code))
}

// ListActive returns every active coupon for display on the checkout page.
func (s *DefaultCouponService) ListActive(ctx context.Context) ([]models.Coupon, error) {
	coupons, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("coupon: failed to list coupons: %w", err)
	}
	return coupons, nil
}

// Validate checks that a code exists, is live, and that the subtotal meets
// its minimum order value. An eligible coupon is returned for the pricing
// calculator; every rejection is a typed, user-facing condition.
func (s *DefaultCouponService) Validate(ctx context.Context, code string, subtotal int) (*models.Coupon, error) {
	c, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCouponNotFound
	}
	if !c.Active {
		return nil, ErrCouponInactive
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(time.Now()) {
		return nil, ErrCouponExpired
	}
	if subtotal < c.MinOrderValue {
		return nil, MinOrderError{MinOrderValue: c.MinOrderValue, Subtotal: subtotal}
	}
	return c, nil
}

// lookup reads through the Redis cache. Cache failures fall back to the
// repository; a negative repository result is not cached.
func (s *DefaultCouponService) lookup(ctx context.Context, code string) (*models.Coupon, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		val, err := s.Cache.Get(ctx, couponKey(code)).Result()
		if err == nil {
			var c models.Coupon
			if err := json.Unmarshal([]byte(val), &c); err == nil {
				return &c, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("coupon: cache read failed", zap.String("code", code), zap.Error(err))
		}
	}

	c, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("coupon: failed to fetch coupon %q: %w", code, err)
	}
	if c == nil {
		return nil, nil
	}

	if s.Cache != nil {
		if data, err := json.Marshal(c); err == nil {
			if err := s.Cache.Set(ctx, couponKey(code), data, utils.CouponCacheTTL).Err(); err != nil {
				logger.Warn("coupon: cache write failed", zap.String("code", code), zap.Error(err))
			}
		}
	}
	return c, nil
}

// Create stores a new coupon and drops any stale cache entry for its code.
func (s *DefaultCouponService) Create(ctx context.Context, coupon models.Coupon) error {
	if err := s.Repo.Create(ctx, coupon); err != nil {
		return fmt.Errorf("coupon: failed to create coupon: %w", err)
	}
	s.evict(ctx, coupon.Code)
	return nil
}

// Delete removes a coupon and its cache entry.
func (s *DefaultCouponService) Delete(ctx context.Context, code string) error {
	if err := s.Repo.DeleteByCode(ctx, code); err != nil {
		return fmt.Errorf("coupon: failed to delete coupon %q: %w", code, err)
	}
	s.evict(ctx, code)
	return nil
}

func (s *DefaultCouponService) evict(ctx context.Context, code string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, couponKey(code)).Err(); err != nil {
		utils.GetLogger().Warn("coupon: cache eviction failed", zap.String("code", code), zap.Error(err))
	}
}
