package userRepo

import (
	"context"

	"gharseva/database"
	"gharseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository handles persistence of users and their loyalty wallets.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByReferralCode(ctx context.Context, code string) (*models.User, error)
	CreditCoins(ctx context.Context, id string, coins int) error
	UpdateFCMToken(ctx context.Context, id, token string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("gharseva")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
