package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UsersCollection         = "users"
	ListsCollection         = "lists"
	RefreshTokensCollection = "refreshtokens"
)

// ErrDuplicateUsername is returned when a user with the same username is already stored.
var ErrDuplicateUsername = errors.New("duplicate username")

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "lists", Value: 1}}},
		},
		RefreshTokensCollection: {
			{Keys: bson.D{{Key: "token", Value: 1}}},
			{Keys: bson.D{{Key: "username", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)

		logger.Log.Infow("ensure indexes",
			"collection", collection,
			"result", names,
			"error", err,
		)

		if err != nil {
			return err
		}
	}

	return nil
}
