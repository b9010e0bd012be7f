package configuration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is used to store revoked session tokens until they expire.
var Client *redis.Client

// InitRedis connects to the redis server, retrying a bounded number of
// times with a fixed delay before giving up.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	var err error
	maxRetries := 5
	retryDelay := time.Second * 5
	for i := 0; i < maxRetries; i++ {
		Client = redis.NewClient(&redis.Options{
			Network:  "tcp",
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})

		_, err = Client.Ping(context.Background()).Result()
		if err == nil {
			break
		}

		fmt.Printf("Failed to connect to Redis (Attempt %d/%d): %s\n", i+1, maxRetries, err.Error())
		time.Sleep(retryDelay)
	}
	if err != nil {
		panic("Failed to connect to Redis after multiple attempts: " + err.Error())
	}
}

// SetRedis will set a key value in redis server
func SetRedis(key string, value any, expirationTime time.Duration) error {
	return Client.Set(context.Background(), key, value, expirationTime).Err()
}

// GetRedis will get the value from redis server using key
func GetRedis(key string) (string, error) {
	return Client.Get(context.Background(), key).Result()
}
