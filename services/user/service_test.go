package user

import (
	"context"
	"strings"
	"testing"

	"gharseva/models"
	"gharseva/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users map[string]models.User // by ID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) Create(_ context.Context, u models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByReferralCode(_ context.Context, code string) (*models.User, error) {
	for _, u := range r.users {
		if u.ReferralCode == code {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) CreditCoins(_ context.Context, id string, coins int) error {
	u := r.users[id]
	u.Coins += coins
	r.users[id] = u
	return nil
}

func (r *memUserRepo) UpdateFCMToken(_ context.Context, id, token string) error {
	u := r.users[id]
	u.FCMToken = token
	r.users[id] = u
	return nil
}

func registerReq(email string) RegisterRequest {
	return RegisterRequest{
		Name:     "Asha",
		Email:    email,
		Phone:    "9800000000",
		Password: "correct-horse",
	}
}

func TestRegister_IssuesTokenAndReferralCode(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	resp, err := svc.Register(context.Background(), registerReq("asha@example.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.True(t, strings.HasPrefix(resp.User.ReferralCode, "GS"))

	// The token's subject round-trips to the new user's ID.
	id, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.Register(context.Background(), registerReq("asha@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("Asha@Example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ReferralBonusCreditsReferrer(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	first, err := svc.Register(context.Background(), registerReq("referrer@example.com"))
	require.NoError(t, err)

	req := registerReq("friend@example.com")
	req.ReferralCode = first.User.ReferralCode
	second, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ReferredBy)
	referrer, err := repo.GetByID(context.Background(), first.User.ID)
	require.NoError(t, err)
	assert.Equal(t, ReferralBonusCoins, referrer.Coins)
}

func TestRegister_UnknownReferralRejected(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	req := registerReq("friend@example.com")
	req.ReferralCode = "GSNOPE1"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidReferral)
}

func TestAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.Register(context.Background(), registerReq("asha@example.com"))
	require.NoError(t, err)

	resp, err := svc.Authenticate(context.Background(), "asha@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate(context.Background(), "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateFCMToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), registerReq("asha@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateFCMToken(context.Background(), resp.User.ID, "fcm-token-1"))
	u, err := svc.GetUserByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "fcm-token-1", u.FCMToken)
}
