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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListReadRepository struct {
	col *mongo.Collection
}

func NewListReadRepository(db *mongo.Database) *ListReadRepository {
	return &ListReadRepository{col: db.Collection(ListsCollection)}
}

// GetByID returns the list with the given id, or nil if there is none.
func (r *ListReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ListDB, error) {
	var list models.ListDB
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&list)

	logger.Log.Infow("findOne",
		"collection", ListsCollection,
		"id", id.Hex(),
		"result", list.ListName,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &list, nil
}

type ListWriteRepository struct {
	col *mongo.Collection
}

func NewListWriteRepository(db *mongo.Database) *ListWriteRepository {
	return &ListWriteRepository{col: db.Collection(ListsCollection)}
}

// Save inserts a new list and returns its id.
func (r *ListWriteRepository) Save(ctx context.Context, list *models.ListDB) (primitive.ObjectID, error) {
	doc := *list
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.Listings == nil {
		doc.Listings = []models.Listing{}
	}

	_, err := r.col.InsertOne(ctx, doc)

	logger.Log.Infow("insertOne",
		"collection", ListsCollection,
		"id", doc.ID.Hex(),
		"owner", doc.OwnerUsername,
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}
	return doc.ID, nil
}

// Update overwrites name, description and listings, stamps lastUpdatedDate,
// and returns the updated list, or nil if there is none.
func (r *ListWriteRepository) Update(
	ctx context.Context,
	id primitive.ObjectID,
	listName, listDescription string,
	listings []models.Listing,
	updatedAt time.Time,
) (*models.ListDB, error) {
	if listings == nil {
		listings = []models.Listing{}
	}

	update := bson.M{"$set": bson.M{
		"listName":        listName,
		"listDescription": listDescription,
		"listings":        listings,
		"lastUpdatedDate": updatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var list models.ListDB
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&list)

	logger.Log.Infow("findOneAndUpdate",
		"collection", ListsCollection,
		"id", id.Hex(),
		"listings", len(listings),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// Delete removes the list. Deleting an absent list is not an error.
func (r *ListWriteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow("deleteOne",
		"collection", ListsCollection,
		"id", id.Hex(),
		"result", deleted,
		"error", err,
	)

	return err
}
