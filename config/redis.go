package config

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/openmatch/matchex/types"
)

var (
	Redis *CacheService
)

const depthCacheKey = "matchex:depth"

type CacheService struct {
	Ctx        context.Context
	Connection *redis.Client
}

func NewCacheService() error {
	c := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	ctx := context.Background()

	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}

	Redis = &CacheService{
		Ctx:        ctx,
		Connection: c,
	}

	return nil
}

// CacheDepth stores the aggregated book snapshot under the shared depth
// key. The TTL from the app config bounds how stale a served level can be.
func (c *CacheService) CacheDepth(depth types.Depth) error {
	entry, err := json.Marshal(depth)
	if err != nil {
		return err
	}

	ttl := time.Duration(App.DepthCacheTTL) * time.Second

	return c.Connection.Set(c.Ctx, depthCacheKey, entry, ttl).Err()
}

// CachedDepth loads the last snapshot; a miss or an expired key returns
// the redis error so callers fall back to the live engine view.
func (c *CacheService) CachedDepth(depth *types.Depth) error {
	val, err := c.Connection.Get(c.Ctx, depthCacheKey).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), depth)
}
