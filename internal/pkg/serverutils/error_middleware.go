package serverutils

import (
	"errors"

	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts errors escaping handlers into the API's JSON error
// shape. Classified errors map through the failure taxonomy; fiber errors
// keep their status; anything else is a 500 with a fixed message.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		status := apperrors.HTTPStatus(err)
		if status >= 500 {
			log.Error("http", "request failed", map[string]interface{}{
				"path":   c.Path(),
				"method": c.Method(),
				"status": status,
				"error":  err.Error(),
			})
		} else {
			log.Warn("http", "request rejected", map[string]interface{}{
				"path":   c.Path(),
				"status": status,
				"error":  err.Error(),
			})
		}

		return c.Status(status).JSON(ErrorResponse(apperrors.PublicMessage(err)))
	}
}
