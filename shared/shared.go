package shared

import (
	"context"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator = ":"
	generationPrefix  = "generation"
)

// FilterByID matches a single row on its primary column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts with ":". Empty parts are kept so
// that positional keys stay unambiguous.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// Generation reads the invalidation token of prefix. A missing or unreadable token is "".
func Generation(ctx context.Context, redisCache cache.RedisCache, prefix string) string {
	var token string
	if err := redisCache.Get(ctx, BuildCacheKey(generationPrefix, prefix), &token); err != nil {
		return ""
	}

	return token
}

// SaveWithinGeneration stores value under key and drops it again when prefix was
// invalidated after generation was read, so a slow reader cannot re-cache stale data.
func SaveWithinGeneration(ctx context.Context, redisCache cache.RedisCache, prefix, generation, key string, value any, ttl int) {
	if err := redisCache.Save(ctx, key, value, ttl); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")

		return
	}

	if Generation(ctx, redisCache, prefix) == generation {
		return
	}

	if err := redisCache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to drop stale cache")
	}
}

// InvalidateCaches rotates the generation of prefix and then removes every key
// under it. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	generationKey := BuildCacheKey(generationPrefix, prefix)
	if err := redisCache.Save(ctx, generationKey, uuid.NewString(), 0); err != nil {
		log.Error().Err(err).Str("cacheKey", generationKey).Msg("failed to rotate cache generation")
	}

	pattern := prefix + cacheKeySeparator + constant.Asterix

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}
