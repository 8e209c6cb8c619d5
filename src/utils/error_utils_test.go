package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growupanand/convoform/src/models"
)

func doHandleError(t *testing.T, err error) (int, models.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return HandleError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleError(t *testing.T) {
	t.Run("AppErrorKeepsStatusAndMessage", func(t *testing.T) {
		status, body := doHandleError(t, Forbidden("quota exceeded"))
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, "quota exceeded", body.Message)
	})

	t.Run("UnknownErrorBecomesGeneric500", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		status, body := doHandleError(t, errors.New("mongo: connection reset"))

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Something went wrong", body.Message)
		assert.Empty(t, body.Detail)
	})

	t.Run("DevelopmentEchoesDetail", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		status, body := doHandleError(t, Internal(errors.New("provider timeout")))

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Something went wrong", body.Message)
		assert.Equal(t, "provider timeout", body.Detail)
	})

	t.Run("WrappedAppErrorIsUnwrapped", func(t *testing.T) {
		wrapped := &AppError{StatusCode: fiber.StatusNotFound, Message: "form not found"}
		status, body := doHandleError(t, wrapped)

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "form not found", body.Message)
	})
}
