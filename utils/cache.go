// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"weddingplanner/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient holds checkout sessions.
	CacheClient *redis.Client
)

// InitCache initializes the Redis client used for checkout sessions.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the checkout session cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
