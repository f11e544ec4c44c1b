package handlers

//go:generate mockgen -source=getaccountlists.go -destination=getaccountlists_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// AccountListsGetter defines the interface that the service must implement.
type AccountListsGetter interface {
	GetAccountLists(ctx context.Context, actor, username string) ([]models.ListLink, error)
}

// AccountListsRequest represents the JSON body for fetching an account's lists
// swagger:model AccountListsRequest
type AccountListsRequest struct {
	// Username, must be the authenticated user
	// required: true
	// default: alice
	Username string `json:"username"`
}

// NewGetAccountListsHandler returns an HTTP handler listing the lists of an account.
// @Summary Get account lists
// @Description Return name and id of every list owned by the authenticated user
// @Tags lists
// @Accept json
// @Produce json
// @Param accountListsRequest body handlers.AccountListsRequest true "Account Lists Request"
// @Success 200 {array} models.ListLink "List summaries"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Username is not the authenticated user"
// @Failure 404 {object} handlers.ErrorResponse "Cannot find user"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /getaccountlists [post]
// @Security BearerAuth
func NewGetAccountListsHandler(svc AccountListsGetter, tokenGetter func(ctx context.Context) (string, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := tokenGetter(r.Context())
		if !ok || username == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req AccountListsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		links, err := svc.GetAccountLists(r.Context(), username, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusNotFound, "Cannot find user")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "forbidden")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, links)
	}
}
