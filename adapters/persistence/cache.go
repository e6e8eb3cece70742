package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prateek9389/prateekportfolio/pkg/logger"
)

const publicCacheTTL = 5 * time.Minute

// ContentCache caches rendered public payloads per collection. A cache
// problem is never an error for the caller: reads fall through to the store,
// writes are best effort.
type ContentCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewContentCache(rdb *redis.Client, log logger.Logger) *ContentCache {
	return &ContentCache{rdb: rdb, logger: log}
}

func PublicCacheKey(collection string) string {
	return fmt.Sprintf("cache:public:%s", collection)
}

func (c *ContentCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

func (c *ContentCache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.rdb.Set(ctx, key, payload, publicCacheTTL).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *ContentCache) Invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
