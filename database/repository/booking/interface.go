package bookingRepo

import (
	"context"

	"gharseva/database"
	"gharseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository handles persistence of confirmed bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("gharseva")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
