package utils

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/models"
)

// AppError carries an HTTP status through the service layer so controllers can
// translate errors in one place.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return NewAppError(fiber.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return NewAppError(fiber.StatusTooManyRequests, message, nil)
}

func Internal(err error) *AppError {
	return NewAppError(fiber.StatusInternalServerError, "Something went wrong", err)
}

// HandleError translates a service error into the HTTP response. Unknown
// errors become a generic 500; the technical detail is only echoed in
// development builds.
func HandleError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	resp := models.ErrorResponse{
		Status:  appErr.StatusCode,
		Message: appErr.Message,
	}
	if appErr.Err != nil && os.Getenv("APP_ENV") == "development" {
		resp.Detail = appErr.Err.Error()
	}

	return c.Status(appErr.StatusCode).JSON(resp)
}
