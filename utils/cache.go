// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"atelier/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient backs the booking conversation memory.
	SessionCacheClient *redis.Client
	// NotebookCacheClient backs the notebook co-writer chat history.
	NotebookCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for conversation memory.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the conversation memory client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitNotebookCache initializes the Redis client for notebook chat history.
func InitNotebookCache() {
	NotebookCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotebookDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NotebookCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Notebook Cache): %v", err)
	}
}

// GetNotebookCacheClient returns the notebook chat history client.
func GetNotebookCacheClient() *redis.Client {
	if NotebookCacheClient == nil {
		InitNotebookCache()
	}
	return NotebookCacheClient
}
