package handlers

//go:generate mockgen -source=createlist.go -destination=createlist_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// ListCreator defines the interface that the service must implement.
type ListCreator interface {
	CreateList(ctx context.Context, actor, owner string, in services.ListInput) (string, error)
}

// CreateListRequest represents the JSON body for list creation
// swagger:model CreateListRequest
type CreateListRequest struct {
	// List name
	// required: true
	// default: Favorites
	ListName string `json:"listName"`

	// Description
	// default: Films to rewatch
	ListDescription string `json:"listDescription"`

	// Entries in display order
	Listings []models.Listing `json:"listings"`

	// Owner, must be the authenticated user
	// required: true
	// default: alice
	OwnerUsername string `json:"ownerUsername"`
}

// NewCreateListHandler returns an HTTP handler that creates a list and links it to its owner.
// The response body is the new list id as a JSON string.
// @Summary Create list
// @Description Create a list owned by the authenticated user
// @Tags lists
// @Accept json
// @Produce json
// @Param createListRequest body handlers.CreateListRequest true "Create List Request"
// @Success 200 {string} string "New list id"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Owner is not the authenticated user"
// @Failure 404 {object} handlers.ErrorResponse "Owner not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /createlist [post]
// @Security BearerAuth
func NewCreateListHandler(svc ListCreator, tokenGetter func(ctx context.Context) (string, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := tokenGetter(r.Context())
		if !ok || username == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req CreateListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := svc.CreateList(r.Context(), username, req.OwnerUsername, services.ListInput{
			ListName:        req.ListName,
			ListDescription: req.ListDescription,
			Listings:        req.Listings,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidList):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "forbidden")
			case errors.Is(err, services.ErrListOwnerNotFound):
				writeError(w, http.StatusNotFound, "Cannot find user")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, id)
	}
}
