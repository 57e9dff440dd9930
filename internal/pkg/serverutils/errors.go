package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status together with a user-facing message.
// Services return it when a failure should not be masked as a 500.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func Conflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message)
}

// ErrorHandlerMiddleware converts errors bubbled out of handlers into the
// response envelope. Unclassified errors become a generic 500 so internals
// never leak to the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Printf("[ERROR] Unhandled: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
