package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/controllers"
)

func ActivityRoutes(app *fiber.App, ac *controllers.ActivityController, protect fiber.Handler) {
	activity := app.Group("/api/v1/activities", protect)

	activity.Post("/", ac.LogActivity)
	activity.Get("/user/:userId", ac.GetUserActivities)
	activity.Get("/heatmap/:userId", ac.GetHeatmapData)
}
