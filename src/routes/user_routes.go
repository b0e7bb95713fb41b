package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/controllers"
)

func UserRoutes(app *fiber.App, uc *controllers.UserController, protect fiber.Handler) {
	user := app.Group("/api/v1/users", protect)

	user.Get("/", uc.SearchUsers)
	user.Get("/:id", uc.GetUser)
}
