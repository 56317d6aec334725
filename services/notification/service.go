package notification

import (
	"context"
	"fmt"
	"time"

	"gharseva/models"
	"gharseva/utils"

	"firebase.google.com/go/v4/messaging"
)

// CatalogTopic is the FCM topic clients subscribe to for catalog updates.
const CatalogTopic = "catalog-updates"

// SendCatalogChanged publishes a data-only message to the catalog topic so
// clients can drop their local category caches and refetch.
func (s *DefaultNotificationService) SendCatalogChanged(ctx context.Context, event models.CatalogChangedEvent) error {
	msg := &messaging.Message{
		Topic: CatalogTopic,
		Data: map[string]string{
			"type":      "catalog_changed",
			"category":  event.Category,
			"reason":    event.Reason,
			"changedAt": event.ChangedAt.Format(time.RFC3339),
		},
	}

	response, err := utils.GetFCMClient().Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendCatalogChanged: failed to send FCM message: %w", err)
	}

	utils.GetLogger().Sugar().Infow("catalog change pushed", "category", event.Category, "messageID", response)
	return nil
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("SendUserPushNotification: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"role": "user",
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
	}

	if _, err := utils.GetFCMClient().Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

var _ NotificationService = (*DefaultNotificationService)(nil)
