package models

import "time"

// User represents a platform user with their loyalty wallet.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	ReferralCode string    `bson:"referralCode" json:"referralCode"`
	ReferredBy   string    `bson:"referredBy,omitempty" json:"referredBy,omitempty"`
	Coins        int       `bson:"coins" json:"coins"` // GS Coin balance
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
