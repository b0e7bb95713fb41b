package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/repositories"
)

type UserController struct {
	users repositories.UserRepository
}

func NewUserController(users repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// GetUser returns a user's profile without the password
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid user ID format"))
	}

	user, err := uc.users.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("User not found"))
	}

	return c.Status(fiber.StatusOK).JSON(user.Sanitized())
}

// SearchUsers lists directory users, filtered by role and a case-insensitive
// name/email search
func (uc *UserController) SearchUsers(c *fiber.Ctx) error {
	role := models.UserRole(c.Query("role"))
	switch role {
	case "", models.UserRoleStudent, models.UserRoleAlumni, models.UserRoleAdmin:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid role"))
	}

	users, err := uc.users.Search(c.Context(), role, c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	result := make([]models.User, 0, len(users))
	for _, user := range users {
		result = append(result, user.Sanitized())
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
