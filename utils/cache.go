// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"roombook/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient backs the local booking store.
var CacheClient *redis.Client

// InitCache connects to Redis using AppConfig and verifies the connection.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis at %s: %w", config.AppConfig.RedisAddr, err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the Redis client, connecting on first use.
func GetCacheClient() (*redis.Client, error) {
	if CacheClient == nil {
		if err := InitCache(); err != nil {
			return nil, err
		}
	}
	return CacheClient, nil
}
