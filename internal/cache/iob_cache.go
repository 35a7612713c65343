// Package cache memoizes IOB evaluations in Redis. The decay engine itself
// never caches; staleness policy belongs out here, tied to how often dose
// data changes between evaluation ticks.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glucokit/glucokit/internal/domain"
)

// IOBCache stores evaluation results keyed by user and evaluation bucket.
type IOBCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIOBCache connects to Redis and verifies the connection.
func NewIOBCache(host, port string, ttl time.Duration) (*IOBCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     "",
		DB:           0,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &IOBCache{client: client, ttl: ttl}, nil
}

// Get returns a cached result for the user at the given evaluation instant,
// or (nil, nil) on a miss. Redis failures also read as misses so the caller
// falls back to recomputation.
func (c *IOBCache) Get(ctx context.Context, userID uint, at time.Time) (*domain.IOBResult, error) {
	raw, err := c.client.Get(ctx, c.key(userID, at)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, nil
	}

	var result domain.IOBResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, nil
	}
	return &result, nil
}

// Set stores an evaluation result with the cache TTL.
func (c *IOBCache) Set(ctx context.Context, userID uint, at time.Time, result domain.IOBResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal IOB result: %w", err)
	}
	if err := c.client.Set(ctx, c.key(userID, at), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache IOB result: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *IOBCache) Close() error {
	return c.client.Close()
}

// key buckets the evaluation instant to the minute so repeated evaluations
// within the same tick share an entry.
func (c *IOBCache) key(userID uint, at time.Time) string {
	return fmt.Sprintf("iob:%d:%d", userID, at.Truncate(time.Minute).Unix())
}
