package booking

import (
	"context"
	"testing"

	"gharseva/models"
	"gharseva/services/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBookingRepo struct {
	bookings map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, b models.Booking) (string, error) {
	r.bookings[b.ID] = b
	return b.ID, nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBookingRepo) GetByUserID(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	b := r.bookings[id]
	b.Status = status
	r.bookings[id] = b
	return nil
}

type memCartRepo struct {
	carts map[string]models.Cart
}

func (r *memCartRepo) GetByUserID(_ context.Context, userID string) (*models.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCartRepo) Save(_ context.Context, c models.Cart) error {
	r.carts[c.UserID] = c
	return nil
}

func (r *memCartRepo) ClearByUserID(_ context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

type memUserRepo struct {
	coins map[string]int
}

func (r *memUserRepo) Create(context.Context, models.User) error { return nil }
func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return &models.User{ID: id, Coins: r.coins[id]}, nil
}
func (r *memUserRepo) GetByEmail(context.Context, string) (*models.User, error)        { return nil, nil }
func (r *memUserRepo) GetByReferralCode(context.Context, string) (*models.User, error) { return nil, nil }
func (r *memUserRepo) CreditCoins(_ context.Context, id string, coins int) error {
	r.coins[id] += coins
	return nil
}
func (r *memUserRepo) UpdateFCMToken(context.Context, string, string) error { return nil }

type stubCartSvc struct {
	summary *models.CartSummary
	err     error
}

func (s *stubCartSvc) GetCart(context.Context, string) (*models.Cart, error) { return nil, nil }
func (s *stubCartSvc) AddItem(context.Context, string, string) (*models.Cart, error) {
	return nil, nil
}
func (s *stubCartSvc) AddPackage(context.Context, string, string) (*models.Cart, error) {
	return nil, nil
}
func (s *stubCartSvc) RemoveItem(context.Context, string, string) (*models.Cart, error) {
	return nil, nil
}
func (s *stubCartSvc) DecrementItem(context.Context, string, string) (*models.Cart, error) {
	return nil, nil
}
func (s *stubCartSvc) SetAddOns(context.Context, string, []models.AddOn) (*models.Cart, error) {
	return nil, nil
}
func (s *stubCartSvc) Summary(context.Context, string, string) (*models.CartSummary, error) {
	return s.summary, s.err
}

type stubNotifier struct {
	userIDs []string
	bodies  []string
	err     error
}

func (s *stubNotifier) SendCatalogChanged(context.Context, models.CatalogChangedEvent) error {
	return nil
}

func (s *stubNotifier) SendUserPushNotification(_ context.Context, userID, _, body string) error {
	s.userIDs = append(s.userIDs, userID)
	s.bodies = append(s.bodies, body)
	return s.err
}

func checkoutReq() CheckoutRequest {
	return CheckoutRequest{
		Address:       "12 MG Road, Bengaluru",
		Date:          "2026-09-05",
		TimeSlot:      "10:00-12:00",
		PaymentMethod: "cod",
	}
}

func newTestBookingService(carts *memCartRepo, summary *models.CartSummary, summaryErr error) (*DefaultBookingService, *memBookingRepo, *memUserRepo) {
	bookings := newMemBookingRepo()
	users := &memUserRepo{coins: make(map[string]int)}
	svc := &DefaultBookingService{
		Repo:     bookings,
		CartRepo: carts,
		UserRepo: users,
		CartSvc:  &stubCartSvc{summary: summary, err: summaryErr},
		Notifier: &stubNotifier{},
	}
	return svc, bookings, users
}

func TestCheckout_FreezesSummaryCreditsCoinsClearsCart(t *testing.T) {
	carts := &memCartRepo{carts: map[string]models.Cart{
		"u1": {
			ID:     "c1",
			UserID: "u1",
			Items:  []models.CartItem{{ServiceID: "svc-1", PriceAmount: 2499, Quantity: 1}},
		},
	}}
	summary := &models.CartSummary{Subtotal: 2499, ServiceFee: 49, Discount: 50, Total: 2498, CoinsEarned: 99}
	svc, bookings, users := newTestBookingService(carts, summary, nil)

	bk, err := svc.Checkout(context.Background(), "u1", checkoutReq())
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, bk.Status)
	assert.Equal(t, *summary, bk.Summary)
	assert.Len(t, bk.Items, 1)

	// Persisted.
	stored, err := bookings.GetByID(context.Background(), bk.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// Coins credited and cart cleared.
	assert.Equal(t, 99, users.coins["u1"])
	c, err := carts.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, c)

	// Confirmation pushed to the booking user.
	notifier := svc.Notifier.(*stubNotifier)
	require.Len(t, notifier.userIDs, 1)
	assert.Equal(t, "u1", notifier.userIDs[0])
	assert.Contains(t, notifier.bodies[0], "10:00-12:00")
}

func TestCheckout_PushFailureDoesNotFailBooking(t *testing.T) {
	carts := &memCartRepo{carts: map[string]models.Cart{
		"u1": {ID: "c1", UserID: "u1", Items: []models.CartItem{{ServiceID: "svc-1", PriceAmount: 100, Quantity: 1}}},
	}}
	svc, bookings, _ := newTestBookingService(carts, &models.CartSummary{Total: 149}, nil)
	svc.Notifier = &stubNotifier{err: assert.AnError}

	bk, err := svc.Checkout(context.Background(), "u1", checkoutReq())
	require.NoError(t, err)
	assert.Contains(t, bookings.bookings, bk.ID)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	carts := &memCartRepo{carts: map[string]models.Cart{}}
	svc, _, _ := newTestBookingService(carts, &models.CartSummary{}, nil)

	_, err := svc.Checkout(context.Background(), "u1", checkoutReq())
	assert.ErrorIs(t, err, cart.ErrCartEmpty)
}

func TestCheckout_SummaryErrorAborts(t *testing.T) {
	carts := &memCartRepo{carts: map[string]models.Cart{
		"u1": {ID: "c1", UserID: "u1", Items: []models.CartItem{{ServiceID: "svc-1", PriceAmount: 100, Quantity: 1}}},
	}}
	svc, bookings, _ := newTestBookingService(carts, nil, assert.AnError)

	_, err := svc.Checkout(context.Background(), "u1", checkoutReq())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, bookings.bookings)

	// Cart stays intact for another attempt.
	c, err := carts.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestCancelBooking(t *testing.T) {
	carts := &memCartRepo{carts: map[string]models.Cart{
		"u1": {ID: "c1", UserID: "u1", Items: []models.CartItem{{ServiceID: "svc-1", PriceAmount: 100, Quantity: 1}}},
	}}
	svc, bookings, _ := newTestBookingService(carts, &models.CartSummary{Total: 149}, nil)

	bk, err := svc.Checkout(context.Background(), "u1", checkoutReq())
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(context.Background(), bk.ID))
	stored := bookings.bookings[bk.ID]
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)

	assert.ErrorIs(t, svc.CancelBooking(context.Background(), "missing"), ErrBookingNotFound)
}
