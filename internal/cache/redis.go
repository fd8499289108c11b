package cache

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("Connected to Redis at %s", redisURL)
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// DailyQuoteKey caches a resolved assignment for a scope and date.
// Format: "daily:scope:date" (e.g. "daily:global:2024-05-01")
func DailyQuoteKey(scope, date string) string {
	return "daily:" + scope + ":" + date
}

// WidgetKey caches a rendered widget payload.
// Format: "widget:user:date:language"; anonymous requests use "anon".
func WidgetKey(userID, date, language string) string {
	if userID == "" {
		userID = "anon"
	}
	return strings.Join([]string{"widget", userID, date, language}, ":")
}

// TTLUntilEndOfDay returns how long a day-scoped cache entry should live:
// until the next UTC midnight, when the assignment rolls over.
func TTLUntilEndOfDay(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return midnight.Sub(now)
}
