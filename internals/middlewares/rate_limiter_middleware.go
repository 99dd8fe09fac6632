package middlewares

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstore "github.com/gofiber/storage/redis/v3"

	"educrm_backend/internals/configs"
)

// limiterStorage returns a shared redis-backed store when REDIS_URL is set,
// so counters survive restarts and are shared across replicas. Nil falls
// back to fiber's in-memory store (single instance only).
func limiterStorage() fiber.Storage {
	if configs.RedisURL == "" {
		return nil
	}
	log.Println("✅ rate limiter using redis storage")
	return redisstore.New(redisstore.Config{URL: configs.RedisURL})
}

// Global limiter: every ordinary endpoint
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Storage:    limiterStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests, slow down")
		},
	})
}

// Stricter limiter for the auth endpoints (login brute force)
func AuthRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		Storage:    limiterStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many auth attempts")
		},
	})
}
