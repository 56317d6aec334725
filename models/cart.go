package models

import "time"

// CartItem is one line in a user's cart. Items are unique by ServiceID.
type CartItem struct {
	ServiceID   string `bson:"serviceId" json:"serviceId"`
	PackageName string `bson:"packageName" json:"packageName"`
	PriceAmount int    `bson:"priceAmount" json:"priceAmount"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	IsPackage   bool   `bson:"isPackage" json:"isPackage"`
}

// AddOn is an optional extra selected at checkout (e.g. deep-clean upgrade).
type AddOn struct {
	Name  string `bson:"name" json:"name"`
	Price int    `bson:"price" json:"price"`
}

// Cart is the persisted per-user cart. The applied coupon is deliberately not
// part of this document; it lives only in the checkout session.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	Items     []CartItem `bson:"items" json:"items"`
	AddOns    []AddOn    `bson:"addOns,omitempty" json:"addOns,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// CartSummary is the checkout price breakdown returned to the client and
// copied onto the booking at confirmation.
type CartSummary struct {
	Subtotal    int    `json:"subtotal"` // items plus add-ons
	ServiceFee  int    `json:"serviceFee"`
	Discount    int    `json:"discount"`
	Total       int    `json:"total"`
	CoinsEarned int    `json:"coinsEarned"`
	CouponCode  string `json:"couponCode,omitempty"`
}
