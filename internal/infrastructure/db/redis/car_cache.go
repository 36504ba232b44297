package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bcrental/car-rental-api/internal/core/domain"
)

const carCacheTTL = 5 * time.Minute

// CarCache is a read-through cache for single-car lookups backed by Redis.
// Key format: car:<id>
type CarCache struct {
	client *redis.Client
}

// NewCarCache creates a CarCache wrapping the given Redis client.
func NewCarCache(client *redis.Client) *CarCache {
	return &CarCache{client: client}
}

// Get returns the cached car, or (nil, nil) on a miss.
func (c *CarCache) Get(ctx context.Context, id string) (*domain.Car, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("car cache get: %w", err)
	}

	var car domain.Car
	if err := json.Unmarshal(raw, &car); err != nil {
		return nil, fmt.Errorf("car cache decode: %w", err)
	}
	return &car, nil
}

// Set stores the car for carCacheTTL.
func (c *CarCache) Set(ctx context.Context, car *domain.Car) error {
	raw, err := json.Marshal(car)
	if err != nil {
		return fmt.Errorf("car cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(car.ID), raw, carCacheTTL).Err()
}

// Invalidate drops the cached entry after an update or delete.
func (c *CarCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *CarCache) key(id string) string {
	return "car:" + id
}
