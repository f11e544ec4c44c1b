package handlers

//go:generate mockgen -source=deletelist.go -destination=deletelist_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// ListDeleter defines the interface that the service must implement.
type ListDeleter interface {
	DeleteList(ctx context.Context, actor, id string) error
}

// NewDeleteListHandler returns an HTTP handler that deletes a list and its owner reference.
// @Summary Delete list
// @Description Delete a list owned by the authenticated user
// @Tags lists
// @Param id path string true "List id"
// @Success 200 "List deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the list owner"
// @Failure 404 {object} handlers.ErrorResponse "No account references this list"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /deletelist/{id} [delete]
// @Security BearerAuth
func NewDeleteListHandler(svc ListDeleter, tokenGetter func(ctx context.Context) (string, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := tokenGetter(r.Context())
		if !ok || username == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		err := svc.DeleteList(r.Context(), username, chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound):
				writeError(w, http.StatusNotFound, "list not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "forbidden")
			default:
				writeInternalError(w, err)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
