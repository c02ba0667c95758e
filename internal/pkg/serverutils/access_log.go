package serverutils

import (
	"time"

	"reqforge-ai-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// AccessLog writes one line per request through the service logger.
func AccessLog(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = StatusOf(err)
		}

		details := map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         ctx.IP(),
		}
		if requestID, ok := ctx.Locals("requestid").(string); ok {
			details["request_id"] = requestID
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Warn("HTTP", "request", details)
		default:
			log.Info("HTTP", "request", details)
		}
		return err
	}
}
