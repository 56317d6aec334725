package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gharseva/config"
	"gharseva/models"
	"gharseva/services/catalog"
	"gharseva/services/notification"

	"github.com/hibiken/asynq"
)

const TypeCatalogRefresh = "catalog:refresh"

// NewCatalogRefreshTask wraps a refresh payload into an asynq task.
func NewCatalogRefreshTask(payload models.CatalogRefreshPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCatalogRefresh, b), nil
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// EnqueueCatalogRefresh queues a cache rebuild for one category, or for the
// whole catalog when category is empty.
func EnqueueCatalogRefresh(category string) error {
	client := asynq.NewClient(queueRedisOpt())
	defer client.Close()

	task, err := NewCatalogRefreshTask(models.CatalogRefreshPayload{Category: category})
	if err != nil {
		return err
	}
	_, err = client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(time.Minute))
	return err
}

// InitCatalogWorker runs the async worker in background. Refresh tasks arrive
// from the Kafka consumer and from admin catalog edits.
func InitCatalogWorker(catalogSvc catalog.CatalogService, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCatalogRefresh, handleCatalogRefreshTask(catalogSvc, notifSvc))

	go func() {
		log.Println("[CatalogWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CatalogWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CatalogWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleCatalogRefreshTask(catalogSvc catalog.CatalogService, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.CatalogRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CatalogRefresh] invalid payload: %v", err)
			return err
		}

		if err := catalogSvc.RefreshCategory(ctx, p.Category); err != nil {
			log.Printf("[CatalogRefresh] failed to refresh %q: %v", p.Category, err)
			return err
		}

		event := models.CatalogChangedEvent{
			Category:  p.Category,
			Reason:    "refresh",
			ChangedAt: time.Now(),
		}
		if err := notifSvc.SendCatalogChanged(ctx, event); err != nil {
			// Push delivery is best effort; the cache rebuild already happened.
			log.Printf("[CatalogRefresh] failed to push catalog change: %v", err)
		}
		return nil
	}
}
