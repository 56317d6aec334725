package cart

import (
	"testing"

	"gharseva/models"

	"github.com/stretchr/testify/assert"
)

func items(prices ...int) []models.CartItem {
	out := make([]models.CartItem, 0, len(prices))
	for i, p := range prices {
		out = append(out, models.CartItem{
			ServiceID:   string(rune('a' + i)),
			PriceAmount: p,
			Quantity:    1,
		})
	}
	return out
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 0, Subtotal(nil, nil))
	assert.Equal(t, 1048, Subtotal(items(599, 449), nil))

	// Quantity multiplies; zero quantity counts as one.
	withQty := []models.CartItem{
		{ServiceID: "a", PriceAmount: 100, Quantity: 3},
		{ServiceID: "b", PriceAmount: 50, Quantity: 0},
	}
	assert.Equal(t, 350, Subtotal(withQty, nil))

	// Non-positive prices are skipped, add-ons are included.
	addOns := []models.AddOn{{Name: "Foam Wash", Price: 99}, {Name: "Broken", Price: -5}}
	assert.Equal(t, 199, Subtotal(items(100, -20), addOns))
}

func TestDiscountAmount_Flat(t *testing.T) {
	cpn := &models.Coupon{Code: "WELCOME50", DiscountType: models.DiscountTypeFlat, DiscountValue: 50, MinOrderValue: 199}

	assert.Equal(t, 50, DiscountAmount(500, cpn))
	// Below the minimum order value there is no discount.
	assert.Equal(t, 0, DiscountAmount(198, cpn))
	// Flat value never exceeds the subtotal.
	small := &models.Coupon{Code: "BIG", DiscountType: models.DiscountTypeFlat, DiscountValue: 500}
	assert.Equal(t, 300, DiscountAmount(300, small))
}

func TestDiscountAmount_PercentageRoundsUpAndCaps(t *testing.T) {
	cpn := &models.Coupon{Code: "FESTIVE20", DiscountType: models.DiscountTypePercentage, DiscountValue: 20, MaxDiscount: 200}

	// 20% of 999 is 199.8, rounded up to 200.
	assert.Equal(t, 200, DiscountAmount(999, cpn))
	// 20% of 1500 is 300, capped at MaxDiscount.
	assert.Equal(t, 200, DiscountAmount(1500, cpn))

	// 50% with max 100 on 1000 caps at 100.
	half := &models.Coupon{Code: "HALF", DiscountType: models.DiscountTypePercentage, DiscountValue: 50, MaxDiscount: 100}
	assert.Equal(t, 100, DiscountAmount(1000, half))

	// No cap configured: full ceil percentage.
	uncapped := &models.Coupon{Code: "TEN", DiscountType: models.DiscountTypePercentage, DiscountValue: 10}
	assert.Equal(t, 10, DiscountAmount(91, uncapped))
}

func TestDiscountAmount_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0, DiscountAmount(500, nil))
	assert.Equal(t, 0, DiscountAmount(0, &models.Coupon{DiscountType: models.DiscountTypeFlat, DiscountValue: 50}))

	unknown := &models.Coupon{DiscountType: "BOGO", DiscountValue: 50}
	assert.Equal(t, 0, DiscountAmount(500, unknown))

	negative := &models.Coupon{DiscountType: models.DiscountTypeFlat, DiscountValue: -10}
	assert.Equal(t, 0, DiscountAmount(500, negative))
}

func TestLoyaltyCoins(t *testing.T) {
	assert.Equal(t, 20, LoyaltyCoins(524))
	assert.Equal(t, 21, LoyaltyCoins(525))
	assert.Equal(t, 0, LoyaltyCoins(24))
	assert.Equal(t, 0, LoyaltyCoins(0))
	assert.Equal(t, 0, LoyaltyCoins(-100))
}

func TestSummarize(t *testing.T) {
	cart := items(599, 449)
	cpn := &models.Coupon{Code: "WELCOME50", DiscountType: models.DiscountTypeFlat, DiscountValue: 50, MinOrderValue: 199}

	s := Summarize(cart, nil, cpn)
	assert.Equal(t, 1048, s.Subtotal)
	assert.Equal(t, DefaultServiceFee, s.ServiceFee)
	assert.Equal(t, 50, s.Discount)
	assert.Equal(t, 1048+DefaultServiceFee-50, s.Total)
	assert.Equal(t, (1048+DefaultServiceFee-50)/CoinRatio, s.CoinsEarned)
	assert.Equal(t, "WELCOME50", s.CouponCode)
}

func TestSummarize_NoCouponCodeWhenDiscountIsZero(t *testing.T) {
	cart := items(100)
	cpn := &models.Coupon{Code: "WELCOME50", DiscountType: models.DiscountTypeFlat, DiscountValue: 50, MinOrderValue: 199}

	s := Summarize(cart, nil, cpn)
	assert.Equal(t, 0, s.Discount)
	assert.Empty(t, s.CouponCode)
}

func TestSummarize_Idempotent(t *testing.T) {
	cart := items(599, 449, 129)
	addOns := []models.AddOn{{Name: "Foam Wash", Price: 99}}
	cpn := &models.Coupon{Code: "FESTIVE20", DiscountType: models.DiscountTypePercentage, DiscountValue: 20, MaxDiscount: 200, MinOrderValue: 500}

	first := Summarize(cart, addOns, cpn)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Summarize(cart, addOns, cpn))
	}
}

func TestSummarize_EmptyCart(t *testing.T) {
	s := Summarize(nil, nil, nil)
	assert.Equal(t, 0, s.Subtotal)
	assert.Equal(t, DefaultServiceFee, s.Total)
	assert.Equal(t, DefaultServiceFee/CoinRatio, s.CoinsEarned)
}
