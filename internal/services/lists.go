package services

//go:generate mockgen -source=lists.go -destination=lists_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrListNotFound is returned when a list, or the account referencing it, does not exist.
	ErrListNotFound = errors.New("list not found")
	// ErrListOwnerNotFound is returned when a list is created for an unknown account.
	ErrListOwnerNotFound = errors.New("list owner does not exist")
	// ErrInvalidListID is returned for ids that are not valid object ids.
	ErrInvalidListID = errors.New("invalid list id")
	// ErrInvalidList is returned when list content fails validation.
	ErrInvalidList = models.ErrInvalidList
	// ErrForbidden is returned when the caller acts on another account's data.
	ErrForbidden = errors.New("forbidden")
)

// ListWriter defines write operations for lists.
type ListWriter interface {
	Save(ctx context.Context, list *models.ListDB) (primitive.ObjectID, error)
	Update(
		ctx context.Context,
		id primitive.ObjectID,
		listName, listDescription string,
		listings []models.Listing,
		updatedAt time.Time,
	) (*models.ListDB, error)
}

// Ownership is the part of OwnershipCoordinator the list flows need.
type Ownership interface {
	OnListCreated(ctx context.Context, username string, listID primitive.ObjectID) error
	OnListDeleted(ctx context.Context, listID primitive.ObjectID, actor string) (string, error)
	ResolveAccountLists(ctx context.Context, username string) ([]models.ListLink, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ListInput carries the client-editable fields of a list.
type ListInput struct {
	ListName        string
	ListDescription string
	Listings        []models.Listing
}

// ListService handles list CRUD and publishes list events.
type ListService struct {
	reader      ListReader
	writer      ListWriter
	ownership   Ownership
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewListService creates a new ListService. kafkaWriter may be nil.
func NewListService(
	reader ListReader,
	writer ListWriter,
	ownership Ownership,
	kafkaWriter KafkaWriter,
) *ListService {
	return &ListService{
		reader:      reader,
		writer:      writer,
		ownership:   ownership,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

func parseListID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidListID
	}
	return oid, nil
}

// publishListEvent publishes a list event to Kafka.
func (s *ListService) publishListEvent(ctx context.Context, operation, listID, username string) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "list_id", listID)
		return
	}

	event := models.ListEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		ListID:    listID,
		Username:  username,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal list event for Kafka", "list_id", listID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(listID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish list event to Kafka", "list_id", listID, "operation", operation, "error", err)
	} else {
		logger.Log.Infow("List event published to Kafka", "list_id", listID, "operation", operation)
	}
}

// GetList returns the list with the given id.
func (s *ListService) GetList(ctx context.Context, id string) (*models.ListDB, error) {
	oid, err := parseListID(id)
	if err != nil {
		return nil, err
	}

	list, err := s.reader.GetByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to get list", "listID", id, "err", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}

	return list, nil
}

// CreateList stores a new list for owner and links it to the owner's account.
// If linking fails the stored list is left in place unreferenced.
func (s *ListService) CreateList(ctx context.Context, actor, owner string, in ListInput) (string, error) {
	if actor != owner {
		logger.Log.Warnw("list create for another account", "actor", actor, "owner", owner)
		return "", ErrForbidden
	}
	if err := models.ValidateList(in.ListName, in.Listings); err != nil {
		return "", err
	}

	now := s.now()
	id, err := s.writer.Save(ctx, &models.ListDB{
		ListName:        in.ListName,
		ListDescription: in.ListDescription,
		Listings:        in.Listings,
		OwnerUsername:   owner,
		CreationDate:    now,
		LastUpdatedDate: now,
	})
	if err != nil {
		logger.Log.Errorw("failed to save list", "owner", owner, "err", err)
		return "", err
	}

	if err := s.ownership.OnListCreated(ctx, owner, id); err != nil {
		return "", err
	}

	logger.Log.Infow("new list created", "listID", id.Hex(), "owner", owner)
	s.publishListEvent(ctx, models.ListCreated, id.Hex(), owner)

	return id.Hex(), nil
}

// UpdateList overwrites name, description and listings of a list owned by actor.
func (s *ListService) UpdateList(ctx context.Context, actor, id string, in ListInput) (*models.ListDB, error) {
	oid, err := parseListID(id)
	if err != nil {
		return nil, err
	}

	current, err := s.reader.GetByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to get list", "listID", id, "err", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrListNotFound
	}
	if current.OwnerUsername != actor {
		logger.Log.Warnw("list update by non-owner", "listID", id, "owner", current.OwnerUsername, "actor", actor)
		return nil, ErrForbidden
	}

	if err := models.ValidateList(in.ListName, in.Listings); err != nil {
		return nil, err
	}

	list, err := s.writer.Update(ctx, oid, in.ListName, in.ListDescription, in.Listings, s.now())
	if err != nil {
		logger.Log.Errorw("failed to update list", "listID", id, "err", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}

	logger.Log.Infow("updated list successfully", "listID", id)
	s.publishListEvent(ctx, models.ListUpdated, id, list.OwnerUsername)

	return list, nil
}

// DeleteList removes a list owned by actor together with the owner's reference to it.
func (s *ListService) DeleteList(ctx context.Context, actor, id string) error {
	oid, err := parseListID(id)
	if err != nil {
		return err
	}

	owner, err := s.ownership.OnListDeleted(ctx, oid, actor)
	if err != nil {
		return err
	}

	logger.Log.Infow("list deleted successfully", "listID", id)
	s.publishListEvent(ctx, models.ListDeleted, id, owner)

	return nil
}

// GetAccountLists returns summaries of the lists owned by username, which must be actor.
func (s *ListService) GetAccountLists(ctx context.Context, actor, username string) ([]models.ListLink, error) {
	if actor != username {
		logger.Log.Warnw("account lists requested for another account", "actor", actor, "username", username)
		return nil, ErrForbidden
	}
	return s.ownership.ResolveAccountLists(ctx, username)
}
