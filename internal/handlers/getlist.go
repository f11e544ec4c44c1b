package handlers

//go:generate mockgen -source=getlist.go -destination=getlist_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// ListGetter defines the interface that the service must implement.
type ListGetter interface {
	GetList(ctx context.Context, id string) (*models.ListDB, error)
}

// NewGetListHandler returns an HTTP handler that fetches a list by id.
// A malformed id is reported as 500.
// @Summary Get list
// @Description Fetch a list by its id
// @Tags lists
// @Produce json
// @Param id path string true "List id"
// @Success 200 {object} models.ListDB "List"
// @Failure 404 {object} handlers.ErrorResponse "List not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /getlist/{id} [get]
func NewGetListHandler(svc ListGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.GetList(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, services.ErrListNotFound) {
				writeError(w, http.StatusNotFound, "list not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}
