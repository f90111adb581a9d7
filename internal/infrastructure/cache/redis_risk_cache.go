package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"fieldops/internal/domain/risk"
	"fieldops/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultRiskCacheTTL = 30 * time.Second

// RedisRiskCache caches dashboard risk summaries in Redis with a short TTL.
// The dashboard tolerates slightly stale aggregates; the TTL bounds how
// stale they can get.
type RedisRiskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IRiskCache = (*RedisRiskCache)(nil)

func NewRedisRiskCache(rdb *redis.Client, ttl time.Duration) *RedisRiskCache {
	if ttl <= 0 {
		ttl = defaultRiskCacheTTL
	}
	return &RedisRiskCache{rdb: rdb, ttl: ttl}
}

// ConnectRedis builds a Redis client from REDIS_ADDR and REDIS_PASSWORD.
// It returns nil when REDIS_ADDR is unset; the dashboard then computes
// summaries on every request.
func ConnectRedis(ctx context.Context, addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v", addr, err)
		return nil
	}
	log.Printf("[cache][redis] connected addr=%s", addr)
	return rdb
}

func (c *RedisRiskCache) Get(ctx context.Context, key string) (risk.Summary, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return risk.Summary{}, false, nil
	}
	if err != nil {
		return risk.Summary{}, false, err
	}

	var s risk.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return risk.Summary{}, false, nil
	}
	return s, true, nil
}

func (c *RedisRiskCache) Set(ctx context.Context, key string, s risk.Summary) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
