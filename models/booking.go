package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

// Booking represents a confirmed booking created at checkout. The price
// breakdown is frozen at confirmation time; later coupon or catalog changes
// never rewrite it.
type Booking struct {
	ID            string     `bson:"id" json:"id"`
	UserID        string     `bson:"userId" json:"userId"`
	Items         []CartItem `bson:"items" json:"items"`
	AddOns        []AddOn    `bson:"addOns,omitempty" json:"addOns,omitempty"`
	Address       string     `bson:"address" json:"address"`
	Date          string     `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot      string     `bson:"timeSlot" json:"timeSlot"`
	PaymentMethod string     `bson:"paymentMethod" json:"paymentMethod"`
	Summary       CartSummary `bson:"summary" json:"summary"`
	Status        string     `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}
