package geocode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedGeocoder fronts another Geocoder with a Redis lookup cache.
// Place names change coordinates rarely, so hits are kept for a long TTL.
// Any cache failure falls through to the wrapped geocoder; only successful
// lookups are cached.
type CachedGeocoder struct {
	inner Geocoder
	cache *redis.Client
	ttl   time.Duration
}

// NewCachedGeocoder wraps inner with a Redis cache. A nil client disables
// caching and every call goes straight to inner.
func NewCachedGeocoder(inner Geocoder, cache *redis.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, cache: cache, ttl: ttl}
}

func cacheKey(place string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(place))
}

func (g *CachedGeocoder) Geocode(ctx context.Context, place string) (*Result, error) {
	key := cacheKey(place)
	if g.cache != nil {
		if data, err := g.cache.Get(ctx, key).Result(); err == nil {
			var res Result
			if err := json.Unmarshal([]byte(data), &res); err == nil {
				return &res, nil
			}
		}
	}

	res, err := g.inner.Geocode(ctx, place)
	if err != nil || res == nil {
		return res, err
	}

	if g.cache != nil {
		if data, err := json.Marshal(res); err == nil {
			if err := g.cache.Set(ctx, key, data, g.ttl).Err(); err != nil {
				zap.L().Warn("failed to cache geocode result", zap.String("place", place), zap.Error(err))
			}
		}
	}
	return res, nil
}
