package services

//go:generate mockgen -source=ownership.go -destination=ownership_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListReader defines read-only operations for lists.
type ListReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ListDB, error)
}

// ListDeleter removes lists.
type ListDeleter interface {
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ListOwnerReader finds users by name or by an owned list.
type ListOwnerReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByListID(ctx context.Context, listID primitive.ObjectID) (*models.UserDB, error)
}

// ListOwnerWriter edits a user's list references. Both methods report whether the user exists.
type ListOwnerWriter interface {
	AppendList(ctx context.Context, username string, listID primitive.ObjectID) (bool, error)
	RemoveLists(ctx context.Context, username string, listIDs ...primitive.ObjectID) (bool, error)
}

// OwnershipCoordinator keeps User.lists in step with the lists collection.
//
// The two collections are not written transactionally. A failure between the
// steps of OnListCreated or OnListDeleted can leave an orphaned list or a
// dangling reference; ResolveAccountLists prunes dangling references when it
// finds them.
type OwnershipCoordinator struct {
	owners      ListOwnerReader
	ownerWriter ListOwnerWriter
	lists       ListReader
	listDeleter ListDeleter
}

// NewOwnershipCoordinator creates a new OwnershipCoordinator.
func NewOwnershipCoordinator(
	owners ListOwnerReader,
	ownerWriter ListOwnerWriter,
	lists ListReader,
	listDeleter ListDeleter,
) *OwnershipCoordinator {
	return &OwnershipCoordinator{
		owners:      owners,
		ownerWriter: ownerWriter,
		lists:       lists,
		listDeleter: listDeleter,
	}
}

// OnListCreated links a freshly stored list to its owner.
func (c *OwnershipCoordinator) OnListCreated(ctx context.Context, username string, listID primitive.ObjectID) error {
	found, err := c.ownerWriter.AppendList(ctx, username, listID)
	if err != nil {
		logger.Log.Errorw("failed to link list to owner", "username", username, "listID", listID.Hex(), "err", err)
		return err
	}
	if !found {
		logger.Log.Warnw("tried to link list to an account that does not exist",
			"username", username, "listID", listID.Hex())
		return ErrListOwnerNotFound
	}
	return nil
}

// OnListDeleted unlinks listID from its owner and then deletes the list.
// actor must be the owner. It returns the owner's username.
func (c *OwnershipCoordinator) OnListDeleted(ctx context.Context, listID primitive.ObjectID, actor string) (string, error) {
	owner, err := c.owners.GetByListID(ctx, listID)
	if err != nil {
		logger.Log.Errorw("failed to find list owner", "listID", listID.Hex(), "err", err)
		return "", err
	}
	if owner == nil {
		logger.Log.Infow("no account references list", "listID", listID.Hex())
		return "", ErrListNotFound
	}
	if owner.Username != actor {
		logger.Log.Warnw("list delete by non-owner", "listID", listID.Hex(), "owner", owner.Username, "actor", actor)
		return "", ErrForbidden
	}

	// unlink first so a failure below leaves an orphaned list, never a dangling reference
	if _, err := c.ownerWriter.RemoveLists(ctx, owner.Username, listID); err != nil {
		logger.Log.Errorw("failed to unlink list from owner", "listID", listID.Hex(), "err", err)
		return "", err
	}

	if err := c.listDeleter.Delete(ctx, listID); err != nil {
		logger.Log.Errorw("failed to delete list", "listID", listID.Hex(), "err", err)
		return "", err
	}

	return owner.Username, nil
}

// ResolveAccountLists returns summaries of the user's lists in order.
// References whose list no longer exists are skipped and pruned from the user in one update.
func (c *OwnershipCoordinator) ResolveAccountLists(ctx context.Context, username string) ([]models.ListLink, error) {
	user, err := c.owners.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return nil, ErrUserDoesNotExist
	}

	links := make([]models.ListLink, 0, len(user.Lists))
	var dangling []primitive.ObjectID

	for _, id := range user.Lists {
		list, err := c.lists.GetByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to get list", "listID", id.Hex(), "err", err)
			return nil, err
		}
		if list == nil {
			dangling = append(dangling, id)
			continue
		}
		links = append(links, models.ListLink{ListName: list.ListName, ListID: list.ID.Hex()})
	}

	if len(dangling) > 0 {
		logger.Log.Infow("pruning dangling list references", "username", username, "count", len(dangling))
		if _, err := c.ownerWriter.RemoveLists(ctx, username, dangling...); err != nil {
			logger.Log.Errorw("failed to prune dangling list references", "username", username, "err", err)
			return nil, err
		}
	}

	return links, nil
}
