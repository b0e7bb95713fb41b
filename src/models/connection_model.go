package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Connection struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Sender      primitive.ObjectID `json:"sender" bson:"sender"`
	Recipient   primitive.ObjectID `json:"recipient" bson:"recipient"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	Status      ConnectionStatus   `json:"status" bson:"status"` // pending, accepted, rejected
	PairKey     string             `json:"-" bson:"pairKey"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	RespondedAt *time.Time         `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
}

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// PairKeyFor builds the order-independent key identifying a user pair. A unique
// index on this field keeps a pair from ever holding two connection documents.
func PairKeyFor(a, b primitive.ObjectID) string {
	x, y := a.Hex(), b.Hex()
	if strings.Compare(x, y) > 0 {
		x, y = y, x
	}
	return x + ":" + y
}
