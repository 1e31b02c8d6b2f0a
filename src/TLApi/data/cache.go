package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	verdictCachePrefix = "truthlens.verdict:"
	verdictCacheTTL    = 6 * time.Hour
)

// VerdictCacheKey derives a stable cache key from the raw input and search
// mode, so identical submissions skip the whole pipeline while the cached
// evidence is still fresh.
func VerdictCacheKey(input, mode string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(input), " "))
	sum := sha256.Sum256([]byte(mode + "|" + normalized))
	return verdictCachePrefix + hex.EncodeToString(sum[:])
}

// GetCachedVerdict returns the cached response body for a key, or "" on miss.
func GetCachedVerdict(ctx context.Context, rdb *redis.Client, key string) string {
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// CacheVerdict stores a response body under the key with a bounded TTL.
func CacheVerdict(ctx context.Context, rdb *redis.Client, key, body string) error {
	return rdb.Set(ctx, key, body, verdictCacheTTL).Err()
}
