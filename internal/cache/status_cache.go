package cache

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/config"
	"github.com/skipit-studio/skipit-api/internal/logger"
)

// StatusEntry is the cached answer for one barber's "open now" question.
type StatusEntry struct {
	Open           bool      `json:"open"`
	ManualOverride *string   `json:"manual_override"`
	CheckedAt      time.Time `json:"checked_at"`
}

// StatusCache is what the status use case needs from a cache. A miss is
// (nil, nil); cache failures are reported so callers can fall through to
// the store instead of failing the request.
type StatusCache interface {
	Get(ctx context.Context, barberID string) (*StatusEntry, error)
	Set(ctx context.Context, barberID string, entry StatusEntry) error
	Invalidate(ctx context.Context, barberID string) error
}

// RedisStatusCache caches the public status in Redis. The entry lives for
// the configured TTL plus a random jitter, which is what bounds how stale
// the public badge can be between refreshes.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
	jitter time.Duration
}

func NewRedisStatusCache(cfg *config.Config) *RedisStatusCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.L().Fatal("failed to connect to redis", zap.Error(err))
	}

	return &RedisStatusCache{
		client: client,
		ttl:    time.Duration(cfg.StatusCacheTTLSeconds) * time.Second,
		jitter: time.Duration(cfg.StatusCacheJitterSeconds) * time.Second,
	}
}

func statusKey(barberID string) string {
	return "status:" + barberID
}

func (c *RedisStatusCache) Get(ctx context.Context, barberID string) (*StatusEntry, error) {
	raw, err := c.client.Get(ctx, statusKey(barberID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry StatusEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// Corrupt entry: treat as a miss, it will be overwritten.
		return nil, nil
	}
	return &entry, nil
}

func (c *RedisStatusCache) Set(ctx context.Context, barberID string, entry StatusEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	ttl := c.ttl
	if c.jitter > 0 {
		ttl += time.Duration(rand.Int63n(int64(c.jitter)))
	}

	return c.client.Set(ctx, statusKey(barberID), raw, ttl).Err()
}

func (c *RedisStatusCache) Invalidate(ctx context.Context, barberID string) error {
	return c.client.Del(ctx, statusKey(barberID)).Err()
}
