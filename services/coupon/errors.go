package coupon

import (
	"errors"
	"fmt"
)

var (
	// ErrCouponNotFound is returned for unknown codes.
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrCouponInactive is returned for codes an admin has switched off.
	ErrCouponInactive = errors.New("coupon is no longer active")

	// ErrCouponExpired is returned for codes past their expiry.
	ErrCouponExpired = errors.New("coupon has expired")
)

// MinOrderError rejects a coupon applied below its minimum order value. It is
// a user-facing validation condition: the caller shows the shortfall and the
// total stays unchanged.
type MinOrderError struct {
	MinOrderValue int
	Subtotal      int
}

// Shortfall is the amount the user must still add for the coupon to apply.
func (e MinOrderError) Shortfall() int {
	return e.MinOrderValue - e.Subtotal
}

func (e MinOrderError) Error() string {
	return fmt.Sprintf("minimum order of %d not met; add items worth %d more", e.MinOrderValue, e.Shortfall())
}
