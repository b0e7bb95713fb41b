package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/config"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/repositories"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/services"
)

type AuthController struct {
	users      repositories.UserRepository
	activities *services.ActivityService
	auth       config.AuthConfig
}

func NewAuthController(users repositories.UserRepository, activities *services.ActivityService, auth config.AuthConfig) *AuthController {
	return &AuthController{users: users, activities: activities, auth: auth}
}

// Register handles user registration: validates input, checks for duplicate
// email, hashes the password and returns a JWT
func (a *AuthController) Register(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if body.Name == "" || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Name, email and password are required"))
	}

	if len(body.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Password must be at least 6 characters"))
	}

	role := models.UserRole(body.Role)
	switch role {
	case "":
		role = models.UserRoleStudent
	case models.UserRoleStudent, models.UserRoleAlumni, models.UserRoleAdmin:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid role"))
	}

	if _, err := a.users.FindByEmail(c.Context(), body.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email already registered"))
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		lib.Logger.Error("failed to check existing email", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), 11)
	if err != nil {
		lib.Logger.Error("failed to hash password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	user := models.User{
		Name:      body.Name,
		Email:     body.Email,
		Password:  string(hashedPassword),
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := a.users.Create(c.Context(), &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email already registered"))
		}
		lib.Logger.Error("failed to create user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to create user"))
	}

	token, err := a.token(user)
	if err != nil {
		lib.Logger.Error("failed to generate token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to generate token"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user":    user.Sanitized(),
	})
}

// Login authenticates a user by email and password and returns a JWT
func (a *AuthController) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email and password are required"))
	}

	user, err := a.users.FindByEmail(c.Context(), body.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
		}
		lib.Logger.Error("failed to look up user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := a.token(*user)
	if err != nil {
		lib.Logger.Error("failed to generate token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to generate token"))
	}

	// Side channel: a failed activity write never fails the login
	a.activities.LogActivity(c.Context(), user.Email, string(models.ActivityTypeLogin), "User logged in")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.Sanitized(),
	})
}

// Me returns the authenticated user's profile
func (a *AuthController) Me(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	return c.Status(fiber.StatusOK).JSON(user)
}

func (a *AuthController) token(user models.User) (string, error) {
	return lib.GenerateJWT(user.Id.Hex(), a.auth.JWTSecret, time.Duration(a.auth.TokenTTLHrs)*time.Hour)
}
