package coupon

import (
	"context"
	"strings"
	"testing"
	"time"

	"gharseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCouponRepo struct {
	coupons map[string]models.Coupon
}

func newMemCouponRepo(coupons ...models.Coupon) *memCouponRepo {
	r := &memCouponRepo{coupons: make(map[string]models.Coupon)}
	for _, c := range coupons {
		r.coupons[strings.ToUpper(c.Code)] = c
	}
	return r
}

func (r *memCouponRepo) Create(_ context.Context, c models.Coupon) error {
	r.coupons[strings.ToUpper(c.Code)] = c
	return nil
}

func (r *memCouponRepo) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	c, ok := r.coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCouponRepo) ListActive(_ context.Context) ([]models.Coupon, error) {
	var out []models.Coupon
	for _, c := range r.coupons {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCouponRepo) DeleteByCode(_ context.Context, code string) error {
	delete(r.coupons, strings.ToUpper(code))
	return nil
}

func future() *time.Time {
	t := time.Now().Add(24 * time.Hour)
	return &t
}

func past() *time.Time {
	t := time.Now().Add(-24 * time.Hour)
	return &t
}

func TestValidate_EligibleCoupon(t *testing.T) {
	svc := &DefaultCouponService{Repo: newMemCouponRepo(models.Coupon{
		Code:          "FESTIVE20",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 20,
		MinOrderValue: 500,
		Active:        true,
		ExpiresAt:     future(),
	})}

	c, err := svc.Validate(context.Background(), "festive20", 750)
	require.NoError(t, err)
	assert.Equal(t, "FESTIVE20", c.Code)
}

func TestValidate_UnknownCode(t *testing.T) {
	svc := &DefaultCouponService{Repo: newMemCouponRepo()}

	_, err := svc.Validate(context.Background(), "NOPE", 1000)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestValidate_InactiveCode(t *testing.T) {
	svc := &DefaultCouponService{Repo: newMemCouponRepo(models.Coupon{
		Code: "OLD", DiscountType: models.DiscountTypeFlat, DiscountValue: 50, Active: false,
	})}

	_, err := svc.Validate(context.Background(), "OLD", 1000)
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestValidate_ExpiredCode(t *testing.T) {
	svc := &DefaultCouponService{Repo: newMemCouponRepo(models.Coupon{
		Code: "LAPSED", DiscountType: models.DiscountTypeFlat, DiscountValue: 50, Active: true, ExpiresAt: past(),
	})}

	_, err := svc.Validate(context.Background(), "LAPSED", 1000)
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestValidate_NoExpirySetMeansNeverExpires(t *testing.T) {
	svc := &DefaultCouponService{Repo: newMemCouponRepo(models.Coupon{
		Code: "EVERGREEN", DiscountType: models.DiscountTypeFlat, DiscountValue: 25, Active: true,
	})}

	_, err := svc.Validate(context.Background(), "EVERGREEN", 100)
	assert.NoError(t, err)
}

func TestValidate_MinOrderShortfall(t *testing.T) {
	svc := &DefaultCouponService{Repo: newMemCouponRepo(models.Coupon{
		Code:          "FESTIVE20",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 20,
		MinOrderValue: 500,
		Active:        true,
	})}

	_, err := svc.Validate(context.Background(), "FESTIVE20", 499)
	require.Error(t, err)

	var minErr MinOrderError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, 500, minErr.MinOrderValue)
	assert.Equal(t, 1, minErr.Shortfall())

	// At exactly the minimum the coupon applies.
	_, err = svc.Validate(context.Background(), "FESTIVE20", 500)
	assert.NoError(t, err)
}

func TestListActive(t *testing.T) {
	svc := &DefaultCouponService{Repo: newMemCouponRepo(
		models.Coupon{Code: "A", Active: true},
		models.Coupon{Code: "B", Active: false},
	)}

	coupons, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "A", coupons[0].Code)
}
