// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"mentorlink/config"

	"github.com/go-redis/redis/v8"
)

// NewAuthCache connects the Redis client used for authorization caching.
func NewAuthCache(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	return client, nil
}
