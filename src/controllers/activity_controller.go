package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/services"
)

type ActivityController struct {
	activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{activities: activities}
}

// LogActivity records an activity event for the authenticated user
func (ac *ActivityController) LogActivity(c *fiber.Ctx) error {
	var body struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	if strings.TrimSpace(body.Type) == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Activity type is required")
	}
	if strings.TrimSpace(body.Description) == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Activity description is required")
	}

	user := c.Locals("user").(models.User)
	ac.activities.LogActivity(c.Context(), user.Email, body.Type, body.Description)

	return c.Status(fiber.StatusOK).SendString("Activity logged successfully")
}

// GetUserActivities returns a user's activity history, optionally restricted
// to an inclusive calendar date range
func (ac *ActivityController) GetUserActivities(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid user ID format")
	}

	activities, err := ac.activities.GetUserActivities(c.Context(), userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if activities == nil {
		activities = []models.Activity{}
	}
	return c.Status(fiber.StatusOK).JSON(activities)
}

// GetHeatmapData returns the date x type activity count matrix for a user
func (ac *ActivityController) GetHeatmapData(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid user ID format")
	}

	data, err := ac.activities.GetHeatmapData(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(data)
}
