package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis initializes the Redis client used for the OTP store.
// Expiry lives in Redis itself (SET ... EX), not in application code.
func ConnectRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	log.Println("✅ Redis connection established")
	return nil
}
