package utils

import (
	"context"
	"log"
	"time"

	"nearaid/config"

	"github.com/go-redis/redis/v8"
)

// GeocodeCacheClient backs the geocode lookup cache.
var GeocodeCacheClient *redis.Client

// InitGeocodeCache initializes the Redis client for geocode caching.
func InitGeocodeCache() {
	GeocodeCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := GeocodeCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (geocode cache): %v", err)
	}
}

// GetGeocodeCacheClient returns the geocode cache client.
func GetGeocodeCacheClient() *redis.Client {
	if GeocodeCacheClient == nil {
		InitGeocodeCache()
	}
	return GeocodeCacheClient
}
