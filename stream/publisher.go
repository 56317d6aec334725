package stream

import (
	"context"
	"encoding/json"
	"time"

	"gharseva/config"
	"gharseva/models"

	"github.com/segmentio/kafka-go"
)

// Publisher emits catalog change events for downstream consumers.
type Publisher interface {
	PublishCatalogChanged(ctx context.Context, event models.CatalogChangedEvent) error
	Close() error
}

// KafkaPublisher writes events to the catalog topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a producer for the configured catalog topic.
func NewKafkaPublisher() *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(config.AppConfig.KafkaBroker),
			Topic:        config.AppConfig.KafkaCatalogTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishCatalogChanged keys the message by category so changes to the same
// category stay ordered on one partition.
func (p *KafkaPublisher) PublishCatalogChanged(ctx context.Context, event models.CatalogChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Category),
		Value: data,
		Time:  time.Now(),
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ Publisher = (*KafkaPublisher)(nil)
