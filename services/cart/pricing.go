package cart

import "gharseva/models"

// DefaultServiceFee is the flat visit fee, in whole rupees, added to every
// order. Coupons never touch it.
const DefaultServiceFee = 49

// CoinRatio is the accrual rate of the loyalty wallet: one GS Coin per 25
// rupees of the final payable total.
const CoinRatio = 25

// Subtotal sums cart line items and selected add-ons.
func Subtotal(items []models.CartItem, addOns []models.AddOn) int {
	total := 0
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		if item.PriceAmount > 0 {
			total += item.PriceAmount * qty
		}
	}
	for _, a := range addOns {
		if a.Price > 0 {
			total += a.Price
		}
	}
	return total
}

// DiscountAmount computes the rupee discount a coupon yields on a subtotal.
// FLAT coupons discount their value, capped at the subtotal. PERCENTAGE
// coupons discount ceil(subtotal*value/100), capped at MaxDiscount when set,
// then at the subtotal. A nil coupon, or a subtotal below the coupon's
// minimum, yields zero; eligibility errors are the coupon service's job.
func DiscountAmount(subtotal int, coupon *models.Coupon) int {
	if coupon == nil || subtotal <= 0 || subtotal < coupon.MinOrderValue {
		return 0
	}

	var discount int
	switch coupon.DiscountType {
	case models.DiscountTypeFlat:
		discount = coupon.DiscountValue
	case models.DiscountTypePercentage:
		discount = (subtotal*coupon.DiscountValue + 99) / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	default:
		return 0
	}

	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// LoyaltyCoins converts a payable total into GS Coin accrual, truncating
// toward zero. Non-positive totals accrue nothing.
func LoyaltyCoins(total int) int {
	if total <= 0 {
		return 0
	}
	return total / CoinRatio
}

// Summarize produces the full checkout breakdown. It is a pure function of
// its inputs: recomputing with the same cart and coupon always yields the
// same summary.
func Summarize(items []models.CartItem, addOns []models.AddOn, coupon *models.Coupon) models.CartSummary {
	subtotal := Subtotal(items, addOns)
	discount := DiscountAmount(subtotal, coupon)

	total := subtotal + DefaultServiceFee - discount
	if total < 0 {
		total = 0
	}

	summary := models.CartSummary{
		Subtotal:    subtotal,
		ServiceFee:  DefaultServiceFee,
		Discount:    discount,
		Total:       total,
		CoinsEarned: LoyaltyCoins(total),
	}
	if coupon != nil && discount > 0 {
		summary.CouponCode = coupon.Code
	}
	return summary
}
