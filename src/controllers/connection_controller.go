package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/services"
)

type ConnectionController struct {
	connections *services.ConnectionService
}

func NewConnectionController(connections *services.ConnectionService) *ConnectionController {
	return &ConnectionController{connections: connections}
}

// SendConnectionRequest sends a connection request from the authenticated user to another user
func (cc *ConnectionController) SendConnectionRequest(c *fiber.Ctx) error {
	var body struct {
		RecipientId string `json:"recipientId"`
		Message     string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid request body"))
	}

	recipientID, err := primitive.ObjectIDFromHex(body.RecipientId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid recipient ID format"))
	}

	user := c.Locals("user").(models.User)

	connection, err := cc.connections.SendConnectionRequest(c.Context(), user.Id, recipientID, body.Message)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Connection request sent successfully",
		"connectionId": connection.Id.Hex(),
	})
}

// AcceptConnectionRequest accepts a connection request addressed to the authenticated user
func (cc *ConnectionController) AcceptConnectionRequest(c *fiber.Ctx) error {
	return cc.respond(c, "Connection request accepted", cc.connections.AcceptConnectionRequest)
}

// RejectConnectionRequest rejects a connection request addressed to the authenticated user
func (cc *ConnectionController) RejectConnectionRequest(c *fiber.Ctx) error {
	return cc.respond(c, "Connection request rejected", cc.connections.RejectConnectionRequest)
}

// GetPendingRequests returns pending connection requests where the authenticated user is the recipient
func (cc *ConnectionController) GetPendingRequests(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	pending, err := cc.connections.GetPendingConnectionRequests(c.Context(), user.Id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	if pending == nil {
		pending = []models.Connection{}
	}
	return c.Status(fiber.StatusOK).JSON(pending)
}

// GetAcceptedConnections returns accepted connections involving the authenticated user
func (cc *ConnectionController) GetAcceptedConnections(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	connections, err := cc.connections.GetAcceptedConnections(c.Context(), user.Id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	if connections == nil {
		connections = []models.Connection{}
	}
	return c.Status(fiber.StatusOK).JSON(connections)
}

// GetConnectionStatus reports the connection state between the authenticated user and another user
func (cc *ConnectionController) GetConnectionStatus(c *fiber.Ctx) error {
	otherUserID, err := primitive.ObjectIDFromHex(c.Params("otherUserId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid user ID format"))
	}

	user := c.Locals("user").(models.User)

	status, err := cc.connections.GetConnectionStatus(c.Context(), user.Id, otherUserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": status})
}

// GetConnectionCount returns the number of accepted connections of the authenticated user
func (cc *ConnectionController) GetConnectionCount(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	count, err := cc.connections.GetConnectionCount(c.Context(), user.Id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

func (cc *ConnectionController) respond(c *fiber.Ctx, message string, respond func(ctx context.Context, connectionID, callerID primitive.ObjectID) (*models.Connection, error)) error {
	connectionID, err := primitive.ObjectIDFromHex(c.Params("connectionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse("Invalid connection ID format"))
	}

	user := c.Locals("user").(models.User)

	connection, err := respond(c.Context(), connectionID, user.Id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    message,
		"connection": connection,
	})
}
