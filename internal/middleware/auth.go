package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/repositories"
	"resume-builder-backend/internal/services"
)

const userIDKey = "userID"

// Protect validates the bearer token and confirms the user still exists
// before storing the owner id in the request locals. Downstream handlers
// trust that id unconditionally.
func Protect(tokens *services.TokenService, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized, no token",
			})
		}

		token := header
		if parts := strings.Fields(header); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}

		userID, err := tokens.Validate(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		if _, err := users.FindByID(c.Context(), userID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not found",
			})
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated owner id set by Protect.
func UserID(c *fiber.Ctx) primitive.ObjectID {
	if id, ok := c.Locals(userIDKey).(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}
