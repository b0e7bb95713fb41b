package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/controllers"
)

func NotificationRoutes(app *fiber.App, nc *controllers.NotificationController, protect fiber.Handler) {
	notification := app.Group("/api/v1/notifications", protect)

	notification.Get("/", nc.GetUserNotifications)
	notification.Put("/:id/read", nc.MarkNotificationRead)
	notification.Put("/read-all", nc.MarkAllNotificationsRead)
}
