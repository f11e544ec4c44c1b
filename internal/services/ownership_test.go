package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ownershipMocks struct {
	owners      *services.MockListOwnerReader
	ownerWriter *services.MockListOwnerWriter
	lists       *services.MockListReader
	listDeleter *services.MockListDeleter
}

func newOwnershipCoordinator(t *testing.T) (*services.OwnershipCoordinator, ownershipMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := ownershipMocks{
		owners:      services.NewMockListOwnerReader(ctrl),
		ownerWriter: services.NewMockListOwnerWriter(ctrl),
		lists:       services.NewMockListReader(ctrl),
		listDeleter: services.NewMockListDeleter(ctrl),
	}
	return services.NewOwnershipCoordinator(m.owners, m.ownerWriter, m.lists, m.listDeleter), m
}

func TestOwnershipCoordinator_OnListCreated(t *testing.T) {
	listID := primitive.NewObjectID()
	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		mockSetup func(m ownershipMocks)
		wantErr   error
	}{
		{
			name: "linked",
			mockSetup: func(m ownershipMocks) {
				m.ownerWriter.EXPECT().AppendList(gomock.Any(), "alice", listID).Return(true, nil)
			},
		},
		{
			name: "owner missing",
			mockSetup: func(m ownershipMocks) {
				m.ownerWriter.EXPECT().AppendList(gomock.Any(), "alice", listID).Return(false, nil)
			},
			wantErr: services.ErrListOwnerNotFound,
		},
		{
			name: "write error",
			mockSetup: func(m ownershipMocks) {
				m.ownerWriter.EXPECT().AppendList(gomock.Any(), "alice", listID).Return(false, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newOwnershipCoordinator(t)
			tt.mockSetup(m)

			err := c.OnListCreated(context.Background(), "alice", listID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOwnershipCoordinator_OnListDeleted(t *testing.T) {
	listID := primitive.NewObjectID()
	alice := &models.UserDB{Username: "alice", Lists: []primitive.ObjectID{listID}}
	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		actor     string
		mockSetup func(m ownershipMocks)
		wantOwner string
		wantErr   error
	}{
		{
			name:  "deleted",
			actor: "alice",
			mockSetup: func(m ownershipMocks) {
				gomock.InOrder(
					m.owners.EXPECT().GetByListID(gomock.Any(), listID).Return(alice, nil),
					m.ownerWriter.EXPECT().RemoveLists(gomock.Any(), "alice", listID).Return(true, nil),
					m.listDeleter.EXPECT().Delete(gomock.Any(), listID).Return(nil),
				)
			},
			wantOwner: "alice",
		},
		{
			name:  "no account references the list",
			actor: "alice",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByListID(gomock.Any(), listID).Return(nil, nil)
			},
			wantErr: services.ErrListNotFound,
		},
		{
			name:  "actor is not the owner",
			actor: "mallory",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByListID(gomock.Any(), listID).Return(alice, nil)
			},
			wantErr: services.ErrForbidden,
		},
		{
			name:  "unlink error keeps the list",
			actor: "alice",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByListID(gomock.Any(), listID).Return(alice, nil)
				m.ownerWriter.EXPECT().RemoveLists(gomock.Any(), "alice", listID).Return(false, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:  "delete error",
			actor: "alice",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByListID(gomock.Any(), listID).Return(alice, nil)
				m.ownerWriter.EXPECT().RemoveLists(gomock.Any(), "alice", listID).Return(true, nil)
				m.listDeleter.EXPECT().Delete(gomock.Any(), listID).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newOwnershipCoordinator(t)
			tt.mockSetup(m)

			owner, err := c.OnListDeleted(context.Background(), listID, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, owner)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOwner, owner)
			}
		})
	}
}

func TestOwnershipCoordinator_ResolveAccountLists(t *testing.T) {
	first := primitive.NewObjectID()
	gone := primitive.NewObjectID()
	second := primitive.NewObjectID()
	dbErr := errors.New("db error")

	user := &models.UserDB{Username: "alice", Lists: []primitive.ObjectID{first, gone, second}}

	tests := []struct {
		name      string
		mockSetup func(m ownershipMocks)
		want      []models.ListLink
		wantErr   error
	}{
		{
			name: "returns lists in order and prunes dangling references",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.lists.EXPECT().GetByID(gomock.Any(), first).Return(&models.ListDB{ID: first, ListName: "Favourites"}, nil)
				m.lists.EXPECT().GetByID(gomock.Any(), gone).Return(nil, nil)
				m.lists.EXPECT().GetByID(gomock.Any(), second).Return(&models.ListDB{ID: second, ListName: "Watch later"}, nil)
				m.ownerWriter.EXPECT().RemoveLists(gomock.Any(), "alice", gone).Return(true, nil)
			},
			want: []models.ListLink{
				{ListName: "Favourites", ListID: first.Hex()},
				{ListName: "Watch later", ListID: second.Hex()},
			},
		},
		{
			name: "user without lists",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{Username: "alice"}, nil)
			},
			want: []models.ListLink{},
		},
		{
			name: "unknown user",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name: "list lookup error",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.lists.EXPECT().GetByID(gomock.Any(), first).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "prune error",
			mockSetup: func(m ownershipMocks) {
				m.owners.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.lists.EXPECT().GetByID(gomock.Any(), first).Return(&models.ListDB{ID: first, ListName: "Favourites"}, nil)
				m.lists.EXPECT().GetByID(gomock.Any(), gone).Return(nil, nil)
				m.lists.EXPECT().GetByID(gomock.Any(), second).Return(&models.ListDB{ID: second, ListName: "Watch later"}, nil)
				m.ownerWriter.EXPECT().RemoveLists(gomock.Any(), "alice", gone).Return(false, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newOwnershipCoordinator(t)
			tt.mockSetup(m)

			links, err := c.ResolveAccountLists(context.Background(), "alice")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, links)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, links)
			}
		})
	}
}
