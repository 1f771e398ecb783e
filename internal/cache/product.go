package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/northwind-service/internal/model"
	"github.com/redis/go-redis/v9"
)

const productListKey = "products:all"

// ProductCache is a read-through cache for the product catalog. Misses and
// Redis errors both surface as redis.Nil / the underlying error; callers are
// expected to fall back to the database.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func (c *ProductCache) GetList(ctx context.Context) ([]model.Product, error) {
	data, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductCache) SetList(ctx context.Context, products []model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productListKey, data, c.ttl).Err()
}

func (c *ProductCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, productListKey).Err()
}
