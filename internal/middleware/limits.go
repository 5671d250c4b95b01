package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// limiterRedis is the slice of the Redis API the limiter actually issues.
// Satisfied by *redis.Client; tests substitute a fake.
type limiterRedis interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RateLimiter counts requests per client IP in Redis windows. Used on the
// endpoints that fabricate sessions or spend model tokens.
type RateLimiter struct {
	redisClient limiterRedis
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{redisClient: client}
}

func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, ip)

		count, err := rl.redisClient.Incr(c, key).Result()
		if err != nil {
			// Redis down: let the request through rather than block everyone.
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(c, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}

		c.Next()
	}
}

// InFlight allows one concurrent request per client for the wrapped
// endpoint. The server-side analog of disabling the submit control while
// an analysis is running: an overlapping call is rejected, not queued.
// The TTL is a safety net in case a crashed handler never releases.
func (rl *RateLimiter) InFlight(keySuffix string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("inflight:%s:%s", keySuffix, c.ClientIP())

		ok, err := rl.redisClient.SetNX(c, key, 1, ttl).Result()
		if err != nil {
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Analysis already in progress"})
			return
		}
		defer rl.redisClient.Del(c, key)

		c.Next()
	}
}
