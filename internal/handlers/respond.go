package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/paras2003gupta/Workout-Log/pkg/apperror"
)

// respondError converts a service error into a JSON error response. Typed
// application errors carry their own status code; anything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode()).JSON(fiber.Map{
			"message": appErr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
