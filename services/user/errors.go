package user

import "errors"

var (
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidReferral is returned when signing up with an unknown
	// referral code.
	ErrInvalidReferral = errors.New("referral code not recognised")
)
