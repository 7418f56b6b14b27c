package middleware

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const rateLimitWindow = time.Minute

// RateLimit caps requests per client IP using a fixed window counter
// in Redis. A nil client or a Redis failure lets traffic through; the
// limiter protects capacity, it is not a security boundary.
func RateLimit(client *redis.Client, limit int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil || limit <= 0 {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), time.Now().Unix()/int64(rateLimitWindow.Seconds()))

		count, err := client.Incr(c.Context(), key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := client.Expire(c.Context(), key, rateLimitWindow).Err(); err != nil {
				logger.Warn("failed to set rate limit key expiry", zap.Error(err))
			}
		}

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, please try again later",
			})
		}

		return c.Next()
	}
}
