package catalogRepo

import (
	"context"

	"gharseva/database"
	"gharseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository handles persistence of catalog service records.
type ServiceRepository interface {
	Create(ctx context.Context, record models.ServiceRecord) (string, error)
	Update(ctx context.Context, record models.ServiceRecord) error
	GetByID(ctx context.Context, id string) (*models.ServiceRecord, error)
	List(ctx context.Context) ([]models.ServiceRecord, error)
	FindByCategoryToken(ctx context.Context, token string) ([]models.ServiceRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a new ServiceRepository instance using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("gharseva")
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
