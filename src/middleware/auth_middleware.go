package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/repositories"
)

// ProtectRoute returns a middleware that checks for a valid JWT token, loads
// the authenticated user and attaches it to the request context under "user".
func ProtectRoute(users repositories.UserRepository, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - no token provided"))
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - invalid token format"))
		}

		claims, err := lib.VerifyJWT(token, jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - invalid token"))
		}

		userID, ok := claims["userId"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - invalid token"))
		}

		objectID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid user ID"))
		}

		user, err := users.FindByID(c.Context(), objectID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("User not found"))
		}

		c.Locals("user", user.Sanitized())

		return c.Next()
	}
}
