package handlers

//go:generate mockgen -source=token.go -destination=token_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// TokenRefresher exchanges a refresh token for a new access token.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*services.Refreshed, error)
}

// RefreshResponse is returned by a successful refresh
// swagger:model RefreshResponse
type RefreshResponse struct {
	// New JWT access token
	// default: JWT_TOKEN
	AccessToken string `json:"accessToken"`

	// Username from the refresh token
	// default: alice
	Username string `json:"username"`
}

// NewTokenHandler returns an HTTP handler that refreshes the access token from the refresh-token cookie.
// When the service rotates the refresh token the cookie is replaced.
// @Summary Refresh access token
// @Description Exchange the refresh-token cookie for a new access token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.RefreshResponse "New access token"
// @Failure 401 {object} handlers.ErrorResponse "Missing refresh-token cookie"
// @Failure 403 {object} handlers.ErrorResponse "Unknown, invalid or expired refresh token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /token [post]
func NewTokenHandler(svc TokenRefresher, cookieTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Refresh(r.Context(), refreshTokenFromRequest(r))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRefreshTokenMissing):
				writeError(w, http.StatusUnauthorized, "refresh token missing")
			case errors.Is(err, services.ErrRefreshTokenNotFound),
				errors.Is(err, services.ErrRefreshTokenInvalid):
				writeError(w, http.StatusForbidden, "forbidden")
			default:
				writeInternalError(w, err)
			}
			return
		}

		if res.RefreshToken != "" {
			setRefreshTokenCookie(w, res.RefreshToken, cookieTTL)
		}
		writeJSON(w, http.StatusOK, RefreshResponse{AccessToken: res.AccessToken, Username: res.Username})
	}
}
