package utils

import (
	"context"
	"fmt"
	"time"

	"littlenest/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient opens and pings a Redis client. The caller owns the client
// and closes it on shutdown.
func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
