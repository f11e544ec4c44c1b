package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Username length bounds, inclusive.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

// UserDB represents a user document in the users collection
type UserDB struct {
	ID            primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`           // Document id
	Username      string               `json:"username" bson:"username"`           // Unique username
	Password      string               `json:"-" bson:"password"`                  // Bcrypt hash, never serialized
	CreationDate  time.Time            `json:"creationDate" bson:"creationDate"`   // Set once on signup
	LastLoginDate time.Time            `json:"lastLoginDate" bson:"lastLoginDate"` // Updated on every login
	Lists         []primitive.ObjectID `json:"lists" bson:"lists"`                 // Owned list ids, in creation order
}
