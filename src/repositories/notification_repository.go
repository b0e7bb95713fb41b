package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *models.Notification) error
	FindByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipient primitive.ObjectID) error
	MarkAllRead(ctx context.Context, recipient primitive.ObjectID) error
}

type mongoNotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &mongoNotificationRepository{col: db.Collection("notifications")}
}

func (r *mongoNotificationRepository) Insert(ctx context.Context, notification *models.Notification) error {
	if notification.Id.IsZero() {
		notification.Id = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, notification)
	return err
}

func (r *mongoNotificationRepository) FindByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error) {
	cursor, err := r.col.Find(
		ctx,
		bson.M{"recipient": recipient},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *mongoNotificationRepository) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) error {
	result, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": id, "recipient": recipient},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoNotificationRepository) MarkAllRead(ctx context.Context, recipient primitive.ObjectID) error {
	_, err := r.col.UpdateMany(
		ctx,
		bson.M{"recipient": recipient, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}
