package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/config"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/controllers"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/middleware"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/repositories"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/routes"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/services"
)

func main() {
	cfg := config.Load()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	client := lib.ConnectDB(cfg.Database)
	defer client.Disconnect(context.Background())

	if err := lib.EnsureIndexes(context.Background()); err != nil {
		lib.Logger.Fatal("failed to create indexes", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(lib.DB)
	connectionRepo := repositories.NewConnectionRepository(lib.DB)
	activityRepo := repositories.NewActivityRepository(lib.DB)
	notificationRepo := repositories.NewNotificationRepository(lib.DB)

	notificationService := services.NewNotificationService(notificationRepo)
	connectionService := services.NewConnectionService(connectionRepo, userRepo, notificationService)
	activityService := services.NewActivityService(activityRepo, userRepo)

	protect := middleware.ProtectRoute(userRepo, cfg.Auth.JWTSecret)

	routes.AuthRoutes(app, controllers.NewAuthController(userRepo, activityService, cfg.Auth), protect)
	routes.UserRoutes(app, controllers.NewUserController(userRepo), protect)
	routes.ConnectionRoutes(app, controllers.NewConnectionController(connectionService), protect)
	routes.ActivityRoutes(app, controllers.NewActivityController(activityService), protect)
	routes.NotificationRoutes(app, controllers.NewNotificationController(notificationService), protect)

	lib.Logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		lib.Logger.Fatal("server stopped", zap.Error(err))
	}
}
