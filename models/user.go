package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"` // Password is not returned in JSON
	Age           int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender        string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Mobile        string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	DisplayName   string             `bson:"display_name,omitempty" json:"displayName,omitempty"`
	PhotoURL      string             `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	EmailVerified bool               `bson:"email_verified" json:"emailVerified"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
