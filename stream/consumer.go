package stream

import (
	"context"
	"encoding/json"
	"time"

	"gharseva/config"
	"gharseva/cron"
	"gharseva/models"
	"gharseva/utils"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupID = "gharseva-catalog"

func catalogReader() *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{config.AppConfig.KafkaBroker},
		Topic:          config.AppConfig.KafkaCatalogTopic,
		GroupID:        consumerGroupID,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})
}

// ConsumeCatalogChanges reads catalog change events and enqueues cache
// refresh tasks for the async worker. Blocks until ctx is cancelled.
func ConsumeCatalogChanges(ctx context.Context) error {
	logger := utils.GetLogger()
	reader := catalogReader()
	defer reader.Close()

	logger.Info("stream: consuming catalog changes",
		zap.String("topic", config.AppConfig.KafkaCatalogTopic),
		zap.String("group", consumerGroupID))

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event models.CatalogChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("stream: dropping malformed catalog event", zap.Error(err))
			continue
		}

		if err := cron.EnqueueCatalogRefresh(event.Category); err != nil {
			logger.Error("stream: failed to enqueue refresh",
				zap.String("category", event.Category), zap.Error(err))
			continue
		}
		logger.Info("stream: refresh queued",
			zap.String("category", event.Category), zap.String("reason", event.Reason))
	}
}
