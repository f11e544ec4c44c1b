package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// Logouter ends a session.
type Logouter interface {
	Logout(ctx context.Context, refreshToken string) error
}

// NewLogoutHandler returns an HTTP handler that deletes the session and clears the cookie.
// @Summary Logout
// @Description Delete the refresh token from the store and clear the refresh-token cookie
// @Tags auth
// @Success 200 "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Missing refresh-token cookie"
// @Failure 403 {object} handlers.ErrorResponse "Unknown refresh token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Logout(r.Context(), refreshTokenFromRequest(r))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRefreshTokenMissing):
				writeError(w, http.StatusUnauthorized, "refresh token missing")
			case errors.Is(err, services.ErrRefreshTokenNotFound):
				writeError(w, http.StatusForbidden, "forbidden")
			default:
				writeInternalError(w, err)
			}
			return
		}

		clearRefreshTokenCookie(w)
		w.WriteHeader(http.StatusOK)
	}
}
