package notification

import (
	"context"

	userRepo "gharseva/database/repository/user"
	"gharseva/models"
)

// NotificationService delivers push notifications over FCM.
type NotificationService interface {
	// SendCatalogChanged fans a catalog-change event out to every client
	// subscribed to the catalog topic.
	SendCatalogChanged(ctx context.Context, event models.CatalogChangedEvent) error
	// SendUserPushNotification sends a direct message to one user's device.
	SendUserPushNotification(ctx context.Context, userID, title, body string) error
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}
