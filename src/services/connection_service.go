package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/lib"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/repositories"
)

// ConnectionService owns the lifecycle of the follow relationship between two
// users. Requests currently auto-accept on send (a follow, not a mutual-consent
// friendship); the pending accept/reject path is kept intact because the
// product has not settled which behavior is intended.
type ConnectionService struct {
	connections   repositories.ConnectionRepository
	users         repositories.UserRepository
	notifications *NotificationService
}

func NewConnectionService(connections repositories.ConnectionRepository, users repositories.UserRepository, notifications *NotificationService) *ConnectionService {
	return &ConnectionService{
		connections:   connections,
		users:         users,
		notifications: notifications,
	}
}

// SendConnectionRequest creates a connection between sender and recipient. At
// most one connection document may exist per user pair in either direction;
// the unique pairKey index backs up the existence pre-check under concurrency.
func (s *ConnectionService) SendConnectionRequest(ctx context.Context, senderID, recipientID primitive.ObjectID, message string) (*models.Connection, error) {
	if senderID == recipientID {
		return nil, ErrSelfConnection
	}

	_, err := s.connections.FindBetweenUsers(ctx, senderID, recipientID)
	if err == nil {
		return nil, ErrAlreadyConnected
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, recipientID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	connection := &models.Connection{
		Sender:    senderID,
		Recipient: recipientID,
		Message:   message,
		Status:    models.ConnectionStatusAccepted, // auto-accept: follow semantics
		CreatedAt: time.Now(),
	}

	if err := s.connections.Insert(ctx, connection); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyConnected
		}
		return nil, err
	}

	// Fire and forget: a failed notification never fails the request
	if err := s.notifications.NotifyNewFollower(ctx, recipientID, senderID, sender.Name); err != nil {
		lib.Logger.Warn("failed to send new follower notification",
			zap.String("recipient", recipientID.Hex()),
			zap.Error(err))
	}

	return connection, nil
}

// AcceptConnectionRequest marks a connection accepted. Only the recipient may
// respond to a request.
func (s *ConnectionService) AcceptConnectionRequest(ctx context.Context, connectionID, callerID primitive.ObjectID) (*models.Connection, error) {
	connection, err := s.findForResponse(ctx, connectionID, callerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.updateStatus(ctx, connection, models.ConnectionStatusAccepted, now); err != nil {
		return nil, err
	}

	if caller, err := s.users.FindByID(ctx, callerID); err != nil {
		lib.Logger.Warn("failed to resolve accepter for notification",
			zap.String("user", callerID.Hex()),
			zap.Error(err))
	} else if err := s.notifications.NotifyConnectionAccepted(ctx, connection.Sender, callerID, caller.Name); err != nil {
		lib.Logger.Warn("failed to send connection accepted notification",
			zap.String("recipient", connection.Sender.Hex()),
			zap.Error(err))
	}

	return connection, nil
}

// RejectConnectionRequest marks a connection rejected. No notification is sent.
func (s *ConnectionService) RejectConnectionRequest(ctx context.Context, connectionID, callerID primitive.ObjectID) (*models.Connection, error) {
	connection, err := s.findForResponse(ctx, connectionID, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.updateStatus(ctx, connection, models.ConnectionStatusRejected, time.Now()); err != nil {
		return nil, err
	}
	return connection, nil
}

func (s *ConnectionService) GetPendingConnectionRequests(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	return s.connections.FindPendingByRecipient(ctx, userID)
}

func (s *ConnectionService) GetAcceptedConnections(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	return s.connections.FindAcceptedByUser(ctx, userID)
}

// GetConnectionStatus reports "none", "pending" or "connected" for a pair.
// The lookup key is order-independent, so the result is symmetric.
func (s *ConnectionService) GetConnectionStatus(ctx context.Context, userID, otherUserID primitive.ObjectID) (string, error) {
	connection, err := s.connections.FindBetweenUsers(ctx, userID, otherUserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "none", nil
		}
		return "", err
	}

	switch connection.Status {
	case models.ConnectionStatusPending:
		return "pending", nil
	case models.ConnectionStatusAccepted:
		return "connected", nil
	default:
		return "none", nil
	}
}

func (s *ConnectionService) GetConnectionCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.connections.CountAcceptedByUser(ctx, userID)
}

func (s *ConnectionService) findForResponse(ctx context.Context, connectionID, callerID primitive.ObjectID) (*models.Connection, error) {
	connection, err := s.connections.FindByID(ctx, connectionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	if connection.Recipient != callerID {
		return nil, ErrUnauthorized
	}
	return connection, nil
}

func (s *ConnectionService) updateStatus(ctx context.Context, connection *models.Connection, status models.ConnectionStatus, respondedAt time.Time) error {
	if err := s.connections.UpdateStatus(ctx, connection.Id, status, respondedAt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrConnectionNotFound
		}
		return err
	}
	connection.Status = status
	connection.RespondedAt = &respondedAt
	return nil
}
