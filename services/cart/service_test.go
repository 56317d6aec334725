package cart

import (
	"context"
	"testing"

	"gharseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartRepo struct {
	carts map[string]models.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[string]models.Cart)}
}

func (r *memCartRepo) GetByUserID(_ context.Context, userID string) (*models.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCartRepo) Save(_ context.Context, cart models.Cart) error {
	r.carts[cart.UserID] = cart
	return nil
}

func (r *memCartRepo) ClearByUserID(_ context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

type memServiceRepo struct {
	records map[string]models.ServiceRecord
	getErr  error
}

func (r *memServiceRepo) Create(_ context.Context, rec models.ServiceRecord) (string, error) {
	r.records[rec.ID] = rec
	return rec.ID, nil
}

func (r *memServiceRepo) Update(_ context.Context, rec models.ServiceRecord) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *memServiceRepo) GetByID(_ context.Context, id string) (*models.ServiceRecord, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *memServiceRepo) List(_ context.Context) ([]models.ServiceRecord, error) {
	out := make([]models.ServiceRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *memServiceRepo) FindByCategoryToken(ctx context.Context, _ string) ([]models.ServiceRecord, error) {
	return r.List(ctx)
}

func (r *memServiceRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

type stubCouponSvc struct {
	coupon *models.Coupon
	err    error
}

func (s *stubCouponSvc) ListActive(context.Context) ([]models.Coupon, error) { return nil, nil }
func (s *stubCouponSvc) Validate(context.Context, string, int) (*models.Coupon, error) {
	return s.coupon, s.err
}
func (s *stubCouponSvc) Create(context.Context, models.Coupon) error { return nil }
func (s *stubCouponSvc) Delete(context.Context, string) error        { return nil }

func newTestCartService(coupons *stubCouponSvc) *DefaultCartService {
	catalog := &memServiceRepo{records: map[string]models.ServiceRecord{
		"svc-1": {ID: "svc-1", PackageName: "AC Gas Refill", PriceAmount: 2499},
		"pkg-1": {ID: "pkg-1", PackageName: "2 BHK Deep Clean", PriceAmount: 3499, IsPackage: true},
	}}
	if coupons == nil {
		coupons = &stubCouponSvc{}
	}
	return &DefaultCartService{
		Repo:        newMemCartRepo(),
		CatalogRepo: catalog,
		CouponSvc:   coupons,
	}
}

func TestAddItem_RepeatedAddIncrementsQuantity(t *testing.T) {
	svc := newTestCartService(nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)
	c, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddPackage_QuantityCappedAtOne(t *testing.T) {
	svc := newTestCartService(nil)
	ctx := context.Background()

	_, err := svc.AddPackage(ctx, "u1", "pkg-1")
	require.NoError(t, err)
	c, err := svc.AddPackage(ctx, "u1", "pkg-1")
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.True(t, c.Items[0].IsPackage)
}

func TestAddItem_UnknownServiceRejected(t *testing.T) {
	svc := newTestCartService(nil)

	_, err := svc.AddItem(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAddItem_LookupErrorPropagates(t *testing.T) {
	svc := newTestCartService(nil)
	svc.CatalogRepo.(*memServiceRepo).getErr = assert.AnError

	_, err := svc.AddItem(context.Background(), "u1", "svc-1")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrServiceNotFound)
}

func TestRemoveItem(t *testing.T) {
	svc := newTestCartService(nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)

	c, err := svc.RemoveItem(ctx, "u1", "svc-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	_, err = svc.RemoveItem(ctx, "u1", "svc-1")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDecrementItem(t *testing.T) {
	svc := newTestCartService(nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)

	c, err := svc.DecrementItem(ctx, "u1", "svc-1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)

	c, err = svc.DecrementItem(ctx, "u1", "svc-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	_, err = svc.DecrementItem(ctx, "u1", "svc-1")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetCart_MissingCartComesBackEmpty(t *testing.T) {
	svc := newTestCartService(nil)

	c, err := svc.GetCart(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", c.UserID)
	assert.Empty(t, c.Items)
}

func TestSummary_AppliesValidatedCoupon(t *testing.T) {
	coupons := &stubCouponSvc{coupon: &models.Coupon{
		Code:          "WELCOME50",
		DiscountType:  models.DiscountTypeFlat,
		DiscountValue: 50,
	}}
	svc := newTestCartService(coupons)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)

	s, err := svc.Summary(ctx, "u1", "WELCOME50")
	require.NoError(t, err)
	assert.Equal(t, 2499, s.Subtotal)
	assert.Equal(t, 50, s.Discount)
	assert.Equal(t, 2499+DefaultServiceFee-50, s.Total)
	assert.Equal(t, "WELCOME50", s.CouponCode)
}

func TestSummary_CouponErrorPropagates(t *testing.T) {
	coupons := &stubCouponSvc{err: assert.AnError}
	svc := newTestCartService(coupons)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)

	_, err = svc.Summary(ctx, "u1", "BROKEN")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSummary_NoCodeSkipsValidation(t *testing.T) {
	coupons := &stubCouponSvc{err: assert.AnError}
	svc := newTestCartService(coupons)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)

	s, err := svc.Summary(ctx, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Discount)
}

func TestSetAddOns(t *testing.T) {
	svc := newTestCartService(nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "svc-1")
	require.NoError(t, err)

	c, err := svc.SetAddOns(ctx, "u1", []models.AddOn{{Name: "Foam Wash", Price: 99}})
	require.NoError(t, err)
	require.Len(t, c.AddOns, 1)

	s, err := svc.Summary(ctx, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, 2499+99, s.Subtotal)
}
