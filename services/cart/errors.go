package cart

import "errors"

var (
	// ErrServiceNotFound is returned when an add-to-cart references an
	// unknown catalog record.
	ErrServiceNotFound = errors.New("service not found")

	// ErrItemNotFound is returned when removing a line the cart doesn't hold.
	ErrItemNotFound = errors.New("item not in cart")

	// ErrCartEmpty is returned when checkout runs against an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
)
