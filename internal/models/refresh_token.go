package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RefreshTokenDB represents a persisted refresh token
type RefreshTokenDB struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"` // Document id
	Token    string             `json:"token" bson:"token"`       // Signed token, lookup key
	Username string             `json:"username" bson:"username"` // Owning user
}
