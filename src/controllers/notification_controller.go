package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetUserNotifications returns the authenticated user's notifications, newest first
func (nc *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	notifications, err := nc.notifications.GetUserNotifications(c.Context(), user.Id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

// MarkNotificationRead marks one of the authenticated user's notifications as read
func (nc *NotificationController) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid notification ID format"))
	}

	user := c.Locals("user").(models.User)

	if err := nc.notifications.MarkRead(c.Context(), id, user.Id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Notification not found"))
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Notification marked as read"))
}

// MarkAllNotificationsRead marks all of the authenticated user's notifications as read
func (nc *NotificationController) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	if err := nc.notifications.MarkAllRead(c.Context(), user.Id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("All notifications marked as read"))
}
