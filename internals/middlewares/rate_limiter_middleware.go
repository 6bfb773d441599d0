package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "akreditasi_backend/internals/helpers"
)

func newLimiter(max int, exp time.Duration, msg string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: exp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// WriteRateLimiter: input nilai & snapshot manual (lebih ketat)
func WriteRateLimiter() fiber.Handler {
	return newLimiter(30, time.Minute, "Terlalu banyak penulisan data. Coba beberapa saat lagi.")
}
