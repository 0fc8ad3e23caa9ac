// file: service/cache.go

package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient is the subset of the Redis client used for caching recipe
// listings. *redis.Client satisfies it.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// Listings are cached under a per-owner generation. Every mutation bumps the
// generation, so a list read before the mutation can only be written to a
// key that is no longer read.
func recipesVersionKey(ownerID string) string {
	return "recipes:ver:" + ownerID
}

func recipesCacheKey(ownerID, version string) string {
	return "recipes:" + ownerID + ":v" + version
}
