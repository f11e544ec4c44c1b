package handlers

//go:generate mockgen -source=updatelist.go -destination=updatelist_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// ListUpdater defines the interface that the service must implement.
type ListUpdater interface {
	UpdateList(ctx context.Context, actor, id string, in services.ListInput) (*models.ListDB, error)
}

// UpdateListRequest represents the JSON body for a list update
// swagger:model UpdateListRequest
type UpdateListRequest struct {
	// List name
	// required: true
	// default: Favorites
	ListName string `json:"listName"`

	// Description
	// default: Films to rewatch
	ListDescription string `json:"listDescription"`

	// Entries in display order, replacing the current ones
	Listings []models.Listing `json:"listings"`
}

// NewUpdateListHandler returns an HTTP handler that overwrites a list.
// A missing list or malformed id is reported as 500.
// @Summary Update list
// @Description Replace name, description and listings of a list owned by the authenticated user
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "List id"
// @Param updateListRequest body handlers.UpdateListRequest true "Update List Request"
// @Success 200 {object} models.ListDB "Updated list"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the list owner"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /updatelist/{id} [patch]
// @Security BearerAuth
func NewUpdateListHandler(svc ListUpdater, tokenGetter func(ctx context.Context) (string, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := tokenGetter(r.Context())
		if !ok || username == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req UpdateListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		list, err := svc.UpdateList(r.Context(), username, chi.URLParam(r, "id"), services.ListInput{
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
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}
