package serverutils

import (
	"errors"

	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusOf resolves the HTTP status an error is reported with.
func StatusOf(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return apperror.HTTPStatus(err)
}

// ErrorHandler renders every error returned from a handler as an
// ErrorResponse body.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := StatusOf(err)
		message := err.Error()

		var fiberErr *fiber.Error
		if !errors.As(err, &fiberErr) && apperror.KindOf(err) == apperror.KindInternal {
			message = "Internal server error"
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("ErrorHandler", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": code,
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
