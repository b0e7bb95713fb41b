package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
	"github.com/stjoseph-dev/AlumniConnect-Backend/src/repositories"
)

// NotificationService creates in-app notification documents. Delivery beyond
// the store is out of scope; callers treat creation failures as non-fatal.
type NotificationService struct {
	notifications repositories.NotificationRepository
}

func NewNotificationService(notifications repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) NotifyNewFollower(ctx context.Context, recipient, follower primitive.ObjectID, followerName string) error {
	return s.notifications.Insert(ctx, &models.Notification{
		Recipient:   recipient,
		Type:        models.NotificationTypeNewFollower,
		RelatedUser: follower,
		Message:     followerName + " started following you",
		CreatedAt:   time.Now(),
	})
}

func (s *NotificationService) NotifyConnectionAccepted(ctx context.Context, recipient, accepter primitive.ObjectID, accepterName string) error {
	return s.notifications.Insert(ctx, &models.Notification{
		Recipient:   recipient,
		Type:        models.NotificationTypeConnectionAccepted,
		RelatedUser: accepter,
		Message:     accepterName + " accepted your connection request",
		CreatedAt:   time.Now(),
	})
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	return s.notifications.FindByRecipient(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.notifications.MarkRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
