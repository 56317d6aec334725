package models

import "time"

// Coupon discount types.
const (
	DiscountTypeFlat       = "FLAT"
	DiscountTypePercentage = "PERCENTAGE"
)

// Coupon is a discount descriptor. MaxDiscount caps PERCENTAGE coupons only;
// zero means uncapped.
type Coupon struct {
	Code          string     `bson:"code" json:"code"`
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	DiscountType  string     `bson:"discountType" json:"discountType"`
	DiscountValue int        `bson:"discountValue" json:"discountValue"`
	MinOrderValue int        `bson:"minOrderValue" json:"minOrderValue"`
	MaxDiscount   int        `bson:"maxDiscount,omitempty" json:"maxDiscount,omitempty"`
	ExpiresAt     *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	Active        bool       `bson:"active" json:"active"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}
