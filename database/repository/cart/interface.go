package cartRepo

import (
	"context"

	"gharseva/database"
	"gharseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository handles persistence of per-user carts.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
	ClearByUserID(ctx context.Context, userID string) error
}

type mongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo returns a new CartRepository instance using MongoDB.
func NewMongoCartRepo() CartRepository {
	db := database.MongoClient.Database("gharseva")
	return &mongoCartRepo{
		coll: db.Collection("carts"),
	}
}
