package serverutils

import (
	"errors"
	"fmt"
	"runtime/debug"

	"ai-legal-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Une erreur interne est survenue. Veuillez réessayer."

// ErrorHandlerMiddleware is the outermost request boundary: validation
// errors become 400s, everything else (returned errors and panics) becomes
// the fixed 500 payload, with the detail exposed only in debug mode.
func ErrorHandlerMiddleware(log logger.ILogger, debugMode bool) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "panic recovered", map[string]interface{}{
					"panic": fmt.Sprintf("%v", r),
					"stack": string(debug.Stack()),
					"path":  ctx.Path(),
				})
				err = writeInternalError(ctx, debugMode, fmt.Sprintf("%v", r))
			}
		}()

		err = ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": validationErr.Message,
			})
		}

		log.Error("http", "unhandled request error", map[string]interface{}{
			"error": err.Error(),
			"path":  ctx.Path(),
		})
		return writeInternalError(ctx, debugMode, err.Error())
	}
}

func writeInternalError(ctx *fiber.Ctx, debugMode bool, details string) error {
	payload := fiber.Map{"error": internalErrorMessage}
	if debugMode {
		payload["details"] = details
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(payload)
}
