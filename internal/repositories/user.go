package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserReadRepository struct {
	col *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{col: db.Collection(UsersCollection)}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetByListID returns the user whose lists contain listID, or nil if there is none.
func (r *UserReadRepository) GetByListID(ctx context.Context, listID primitive.ObjectID) (*models.UserDB, error) {
	return r.findOne(ctx, bson.M{"lists": listID})
}

func (r *UserReadRepository) findOne(ctx context.Context, filter bson.M) (*models.UserDB, error) {
	var user models.UserDB
	err := r.col.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("findOne",
		"collection", UsersCollection,
		"filter", filter,
		"result", user.Username,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	col *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{col: db.Collection(UsersCollection)}
}

// Save inserts a new user. A username collision returns ErrDuplicateUsername.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	doc := *user
	if doc.Lists == nil {
		doc.Lists = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, doc)

	logger.Log.Infow("insertOne",
		"collection", UsersCollection,
		"username", user.Username,
		"result", res,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// AppendList appends listID to the user's lists. It reports whether the user exists.
func (r *UserWriteRepository) AppendList(ctx context.Context, username string, listID primitive.ObjectID) (bool, error) {
	return r.update(ctx, username, bson.M{"$push": bson.M{"lists": listID}})
}

// RemoveLists removes every occurrence of listIDs from the user's lists in one update.
func (r *UserWriteRepository) RemoveLists(ctx context.Context, username string, listIDs ...primitive.ObjectID) (bool, error) {
	return r.update(ctx, username, bson.M{"$pull": bson.M{"lists": bson.M{"$in": listIDs}}})
}

// UpdateLastLogin sets lastLoginDate.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, username string, at time.Time) (bool, error) {
	return r.update(ctx, username, bson.M{"$set": bson.M{"lastLoginDate": at}})
}

func (r *UserWriteRepository) update(ctx context.Context, username string, update bson.M) (bool, error) {
	filter := bson.M{"username": username}
	res, err := r.col.UpdateOne(ctx, filter, update)

	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}

	logger.Log.Infow("updateOne",
		"collection", UsersCollection,
		"filter", filter,
		"update", update,
		"result", matched,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return matched > 0, nil
}
