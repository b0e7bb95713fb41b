package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/controllers"
)

// ConnectionRoutes sets up connection-related routes for sending requests,
// accepting, rejecting, listing and checking connection status
func ConnectionRoutes(app *fiber.App, cc *controllers.ConnectionController, protect fiber.Handler) {
	connection := app.Group("/api/v1/connections", protect)

	connection.Post("/send-request", cc.SendConnectionRequest)
	connection.Post("/:connectionId/accept", cc.AcceptConnectionRequest)
	connection.Post("/:connectionId/reject", cc.RejectConnectionRequest)
	connection.Get("/pending", cc.GetPendingRequests)
	connection.Get("/accepted", cc.GetAcceptedConnections)
	connection.Get("/status/:otherUserId", cc.GetConnectionStatus)
	connection.Get("/count", cc.GetConnectionCount)
}
