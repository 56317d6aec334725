// File: services/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"gharseva/models"
	"gharseva/utils"

	"github.com/go-redis/redis/v8"
)

// PageCache stores classified category pages so repeat views skip the
// fetch-and-classify round trip until the catalog changes.
type PageCache interface {
	Get(ctx context.Context, categoryID string) (*models.CategoryPage, error)
	Set(ctx context.Context, page models.CategoryPage) error
	Invalidate(ctx context.Context, categoryID string) error
	InvalidateAll(ctx context.Context) error
}

type RedisPageCache struct {
	client *redis.Client
}

func NewRedisPageCache(client *redis.Client) PageCache {
	return &RedisPageCache{client: client}
}

func pageKey(categoryID string) string {
	return utils.CatalogPagePrefix + categoryID
}

func (c *RedisPageCache) Get(ctx context.Context, categoryID string) (*models.CategoryPage, error) {
	val, err := c.client.Get(ctx, pageKey(categoryID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var page models.CategoryPage
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *RedisPageCache) Set(ctx context.Context, page models.CategoryPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pageKey(page.Category.ID), data, utils.CatalogPageTTL).Err()
}

func (c *RedisPageCache) Invalidate(ctx context.Context, categoryID string) error {
	return c.client.Del(ctx, pageKey(categoryID)).Err()
}

func (c *RedisPageCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, utils.CatalogPagePrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
