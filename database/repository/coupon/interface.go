package couponRepo

import (
	"context"

	"gharseva/database"
	"gharseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CouponRepository handles persistence of coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon models.Coupon) error
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	ListActive(ctx context.Context) ([]models.Coupon, error)
	DeleteByCode(ctx context.Context, code string) error
}

type mongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo returns a new CouponRepository instance using MongoDB.
func NewMongoCouponRepo() CouponRepository {
	db := database.MongoClient.Database("gharseva")
	return &mongoCouponRepo{
		coll: db.Collection("coupons"),
	}
}
