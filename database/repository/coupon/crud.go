package couponRepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gharseva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new coupon. Codes are stored uppercase.
func (r *mongoCouponRepo) Create(ctx context.Context, coupon models.Coupon) error {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if coupon.Code == "" {
		return errors.New("coupon code is required")
	}
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, coupon)
	return err
}

// GetByCode returns a coupon by its code, or nil if no such coupon exists.
func (r *mongoCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// ListActive returns all currently active coupons.
func (r *mongoCouponRepo) ListActive(ctx context.Context) ([]models.Coupon, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// DeleteByCode removes a coupon by code.
func (r *mongoCouponRepo) DeleteByCode(ctx context.Context, code string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"code": strings.ToUpper(strings.TrimSpace(code))})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("coupon not found")
	}
	return nil
}
