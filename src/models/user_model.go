package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Role      UserRole           `json:"role" bson:"role"`
	Verified  bool               `json:"verified" bson:"verified"`
	Headline  string             `json:"headline,omitempty" bson:"headline,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAlumni  UserRole = "ALUMNI"
	UserRoleAdmin   UserRole = "ADMIN"
)

// Sanitized returns a copy safe to send to clients.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

type UserDto struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     UserRole           `bson:"role" json:"role"`
	Headline string             `bson:"headline,omitempty" json:"headline,omitempty"`
}
