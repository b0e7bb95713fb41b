package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Recipient   primitive.ObjectID `json:"recipient" bson:"recipient"`
	Type        NotificationType   `json:"type" bson:"type"`
	RelatedUser primitive.ObjectID `json:"relatedUser,omitempty" bson:"relatedUser,omitempty"`
	Message     string             `json:"message" bson:"message"`
	Read        bool               `json:"read" bson:"read"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type NotificationType string

const (
	NotificationTypeNewFollower        NotificationType = "newFollower"
	NotificationTypeConnectionAccepted NotificationType = "connectionAccepted"
)
