package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// DenylistToken marks a token id as revoked until its natural expiry.
func DenylistToken(tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return Client.Set(Ctx, "denylist:"+tokenID, "1", ttl).Err()
}

// IsTokenDenylisted reports whether a token id has been revoked. A redis
// error counts as not denylisted so an outage doesn't lock everyone out.
func IsTokenDenylisted(tokenID string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "denylist:"+tokenID).Result()
	return err == nil && n > 0
}
