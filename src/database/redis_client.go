package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()
var RedisURI string

// InitRedis connects to Redis if REDIS_URI is set. The list cache and the job
// queue both check RedisClient for nil and degrade instead of failing requests.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI") // e.g. localhost:6379
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Course list cache and lead notifications disabled.")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	if _, err := client.Ping(RedisCtx).Result(); err != nil {
		log.Println("❌ Failed to connect Redis:", err)
		return
	}

	RedisClient = client
	log.Println("✅ Redis connected successfully")
}
