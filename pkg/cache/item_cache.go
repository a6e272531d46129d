package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain/models"
)

const (
	// ItemCacheTTL is the time-to-live for cached item documents.
	ItemCacheTTL = time.Hour

	itemCacheKeyPrefix = "certified-copy-item"
)

// ItemCache is a read-model cache holding the full item document as JSON.
// The Postgres document store remains the source of truth; entries here are
// warmed by the worker on creation and read through on GetByID.
// Key format: "certified-copy-item:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID string) (*models.Item, error) {
	data, err := c.client.Client().Get(ctx, c.key(itemID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var item models.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("cache unmarshal item: %w", err)
	}
	return &item, nil
}

// Set writes an item document with a 1-hour TTL.
func (c *ItemCache) Set(ctx context.Context, item *models.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache marshal item: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(item.ID), data, ItemCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Used after a patch so the next read serves
// the updated document from Postgres.
func (c *ItemCache) Delete(ctx context.Context, itemID string) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "certified-copy-item:{itemID}"
func (c *ItemCache) key(itemID string) string {
	return fmt.Sprintf("%s:%s", itemCacheKeyPrefix, itemID)
}
