package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gharseva/models"
	"gharseva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ReferralBonusCoins is credited to the referrer's wallet when someone signs
// up with their code.
const ReferralBonusCoins = 50

const tokenTTL = 72 * time.Hour

// newReferralCode derives a short shareable code for a fresh account.
func newReferralCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "GS" + strings.ToUpper(raw[:6])
}

// Register creates an account, resolves an optional referral, and returns a
// signed session token.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("user: failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	var referrer *models.User
	if req.ReferralCode != "" {
		referrer, err = s.Repo.GetByReferralCode(ctx, req.ReferralCode)
		if err != nil {
			return nil, fmt.Errorf("user: failed to resolve referral code: %w", err)
		}
		if referrer == nil {
			return nil, ErrInvalidReferral
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user: failed to hash password: %w", err)
	}

	u := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: string(hash),
		ReferralCode: newReferralCode(),
	}
	if referrer != nil {
		u.ReferredBy = referrer.ID
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("user: failed to create user: %w", err)
	}

	if referrer != nil {
		if err := s.Repo.CreditCoins(ctx, referrer.ID, ReferralBonusCoins); err != nil {
			utils.GetLogger().Warn("user: failed to credit referral bonus",
				zap.String("referrerId", referrer.ID), zap.Error(err))
		}
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("user: failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: u}, nil
}

// Authenticate verifies credentials and returns a signed session token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user: failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("user: failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: *u}, nil
}

// GetUserByID returns a user.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user: failed to fetch user %s: %w", id, err)
	}
	return u, nil
}

// CreditCoins adds GS Coins to a user's wallet.
func (s *DefaultUserService) CreditCoins(ctx context.Context, id string, coins int) error {
	if err := s.Repo.CreditCoins(ctx, id, coins); err != nil {
		return fmt.Errorf("user: failed to credit coins to %s: %w", id, err)
	}
	return nil
}

// UpdateFCMToken stores the device push token used for catalog-change pushes.
func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, id, token string) error {
	if err := s.Repo.UpdateFCMToken(ctx, id, token); err != nil {
		return fmt.Errorf("user: failed to update FCM token for %s: %w", id, err)
	}
	return nil
}
