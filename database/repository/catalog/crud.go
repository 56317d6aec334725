package catalogRepo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"gharseva/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new service record and returns its ID.
func (r *mongoServiceRepo) Create(ctx context.Context, record models.ServiceRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// Update replaces an existing service record.
func (r *mongoServiceRepo) Update(ctx context.Context, record models.ServiceRecord) error {
	record.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": record.ID}, record)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("service record not found")
	}
	return nil
}

// GetByID returns a service record by its ID, nil when none exists.
func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.ServiceRecord, error) {
	var record models.ServiceRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns all service records, ordered by creation time.
func (r *mongoServiceRepo) List(ctx context.Context) ([]models.ServiceRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ServiceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindByCategoryToken returns records whose category, serviceCategory,
// packageName or tag contains the token, case-insensitively. This is a coarse
// pre-filter; the classifier applies the authoritative category filter.
func (r *mongoServiceRepo) FindByCategoryToken(ctx context.Context, token string) ([]models.ServiceRecord, error) {
	if token == "" {
		return r.List(ctx)
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(token), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"category": pattern},
		{"serviceCategory": pattern},
		{"packageName": pattern},
		{"tag": pattern},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ServiceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByID removes a service record by ID.
func (r *mongoServiceRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("service record not found")
	}
	return nil
}
