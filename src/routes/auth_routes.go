package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/controllers"
)

func AuthRoutes(app *fiber.App, a *controllers.AuthController, protect fiber.Handler) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/register", a.Register)
	auth.Post("/login", a.Login)
	auth.Get("/me", protect, a.Me)
}
