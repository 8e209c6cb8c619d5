package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/utils"
)

// RateLimit guards the public respondent endpoints per client IP.
func RateLimit(limit int, window time.Duration) fiber.Handler {
	limiter := utils.NewRateLimiter(limit, window)

	return func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			// limiter failure must not block respondents
			return c.Next()
		}
		if !allowed {
			return utils.HandleError(c, utils.TooManyRequests("Too many requests, please try again later"))
		}
		return c.Next()
	}
}
