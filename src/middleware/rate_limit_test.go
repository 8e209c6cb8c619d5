package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	DB "github.com/growupanand/convoform/src/database"
)

func newRateLimitedApp(limit int) *fiber.App {
	app := fiber.New()
	app.Get("/", RateLimit(limit, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("WithoutRedisRequestsPassThrough", func(t *testing.T) {
		prev := DB.RedisClient
		DB.RedisClient = nil
		t.Cleanup(func() { DB.RedisClient = prev })

		app := newRateLimitedApp(1)
		for i := 0; i < 3; i++ {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		}
	})

	t.Run("OverLimitGets429", func(t *testing.T) {
		mr := miniredis.RunT(t)
		prev := DB.RedisClient
		DB.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() {
			DB.RedisClient.Close()
			DB.RedisClient = prev
		})

		app := newRateLimitedApp(1)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	})
}
