package cartRepo

import (
	"context"
	"errors"
	"time"

	"gharseva/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByUserID returns the user's cart, or nil if the user has none yet.
func (r *mongoCartRepo) GetByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Save upserts the cart keyed by user ID.
func (r *mongoCartRepo) Save(ctx context.Context, cart models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
		cart.CreatedAt = time.Now()
	}
	cart.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, cart, opts)
	return err
}

// ClearByUserID deletes the user's cart. Clearing an absent cart is a no-op.
func (r *mongoCartRepo) ClearByUserID(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}
