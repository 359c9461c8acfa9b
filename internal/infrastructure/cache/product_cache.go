package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"expediente-admin/internal/domain/entity"
	"expediente-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const productKeyPrefix = "product:"

type productCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) repository.ProductCache {
	return &productCache{client: client, ttl: ttl}
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

// Get returns nil, nil on a cache miss.
func (c *productCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	raw, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached product %s: %w", id, err)
	}

	var product entity.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, fmt.Errorf("decode cached product %s: %w", id, err)
	}
	return &product, nil
}

func (c *productCache) Set(ctx context.Context, product *entity.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("encode product %s: %w", product.ID, err)
	}
	if err := c.client.Set(ctx, productKey(product.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache product %s: %w", product.ID, err)
	}
	return nil
}

func (c *productCache) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("evict %d cached products: %w", len(ids), err)
	}
	return nil
}
