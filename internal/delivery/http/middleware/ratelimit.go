package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	rateLimitKeyPrefix = "weatherdash:ratelimit:"
	rateLimitWindow    = time.Second
)

// RateLimitConfig configures RateLimit.
type RateLimitConfig struct {
	// Limit is the number of requests allowed per client per second.
	Limit int
	// KeyFunc identifies the client. Defaults to the remote IP.
	KeyFunc func(c *fiber.Ctx) string
	Log     *logrus.Logger
}

// ensureExpiry restores the window TTL when an earlier EXPIRE was lost, so a
// key never counts forever.
func ensureExpiry(ctx context.Context, rdb *redis.Client, key string, log *logrus.Logger) {
	ttl, err := rdb.TTL(ctx, key).Result()
	if err != nil || ttl >= 0 {
		return
	}
	if err := rdb.Expire(ctx, key, rateLimitWindow).Err(); err != nil && log != nil {
		log.WithError(err).Warn("rate limiter failed to repair window expiry")
	}
}

// RateLimit is a fixed one second window counter shared through Redis.
// Over the limit the request fails with 429. Redis errors let the request
// through.
func RateLimit(rdb *redis.Client, cfg RateLimitConfig) fiber.Handler {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *fiber.Ctx) string { return c.IP() }
	}
	limit := strconv.Itoa(cfg.Limit)

	return func(c *fiber.Ctx) error {
		key := rateLimitKeyPrefix + keyFunc(c)
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			if cfg.Log != nil {
				cfg.Log.WithError(err).Warn("rate limiter unavailable, allowing request")
			}
			return c.Next()
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, rateLimitWindow).Err(); err != nil && cfg.Log != nil {
				cfg.Log.WithError(err).Warn("rate limiter failed to set window expiry")
			}
		} else {
			ensureExpiry(ctx, rdb, key, cfg.Log)
		}

		c.Set("X-RateLimit-Limit", limit)
		if count > int64(cfg.Limit) {
			c.Set(fiber.HeaderRetryAfter, "1")
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests")
		}
		return c.Next()
	}
}
