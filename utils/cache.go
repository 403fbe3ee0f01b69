// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tablebook/config"

	"github.com/go-redis/redis/v8"
)

// SessionClient is the dedicated client for session storage.
var SessionClient *redis.Client

// InitRedis initializes the Redis client used for session storage
// (using DB from AppConfig).
func InitRedis() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for session storage.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitRedis()
	}
	return SessionClient
}
