package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Coupon   *CouponHandler
	User     *UserHandler
	Checkout *CheckoutHandler
	Admin    *AdminHandler
}
