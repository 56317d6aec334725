package user

import (
	"context"

	userRepo "gharseva/database/repository/user"
	"gharseva/models"
)

// RegisterRequest carries a new account's details. ReferralCode is the code
// of an existing user who referred this one, if any.
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Password     string `json:"password" binding:"required,min=8"`
	ReferralCode string `json:"referralCode"`
}

// UserService manages accounts and the GS Coin loyalty wallet.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreditCoins(ctx context.Context, id string, coins int) error
	UpdateFCMToken(ctx context.Context, id, token string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
