package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RefreshTokenReadRepository struct {
	col *mongo.Collection
}

func NewRefreshTokenReadRepository(db *mongo.Database) *RefreshTokenReadRepository {
	return &RefreshTokenReadRepository{col: db.Collection(RefreshTokensCollection)}
}

// GetByToken returns the record for token, or nil if there is none.
func (r *RefreshTokenReadRepository) GetByToken(ctx context.Context, token string) (*models.RefreshTokenDB, error) {
	return r.findOne(ctx, bson.M{"token": token})
}

// GetByUsername returns a record owned by username, or nil if there is none.
func (r *RefreshTokenReadRepository) GetByUsername(ctx context.Context, username string) (*models.RefreshTokenDB, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *RefreshTokenReadRepository) findOne(ctx context.Context, filter bson.M) (*models.RefreshTokenDB, error) {
	var rt models.RefreshTokenDB
	err := r.col.FindOne(ctx, filter).Decode(&rt)

	// token values are never logged
	logger.Log.Infow("findOne",
		"collection", RefreshTokensCollection,
		"found", err == nil,
		"username", rt.Username,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rt, nil
}

type RefreshTokenWriteRepository struct {
	col *mongo.Collection
}

func NewRefreshTokenWriteRepository(db *mongo.Database) *RefreshTokenWriteRepository {
	return &RefreshTokenWriteRepository{col: db.Collection(RefreshTokensCollection)}
}

// Save stores a token for username.
func (r *RefreshTokenWriteRepository) Save(ctx context.Context, token, username string) error {
	_, err := r.col.InsertOne(ctx, models.RefreshTokenDB{Token: token, Username: username})

	logger.Log.Infow("insertOne",
		"collection", RefreshTokensCollection,
		"username", username,
		"error", err,
	)

	return err
}

// DeleteByToken removes every record holding token and returns how many were removed.
func (r *RefreshTokenWriteRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"token": token})

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow("deleteMany",
		"collection", RefreshTokensCollection,
		"result", deleted,
		"error", err,
	)

	return deleted, err
}
