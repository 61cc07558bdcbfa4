package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/paras2003gupta/Workout-Log/internal/services"
)

// TokenHeader is the request header that carries the session token.
const TokenHeader = "x-access-token"

// AuthRequired is a Fiber middleware that verifies the session token before
// any protected handler runs. The resolved user is stored in the request
// locals under "user".
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(TokenHeader)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token is missing",
			})
		}

		user, err := authService.VerifyToken(tokenString)
		if err != nil {
			log.Printf("Token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID)

		return c.Next()
	}
}
