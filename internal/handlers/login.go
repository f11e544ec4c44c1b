package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*services.Session, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AccessTokenResponse carries a freshly issued access token
// swagger:model AccessTokenResponse
type AccessTokenResponse struct {
	// JWT access token
	// default: JWT_TOKEN
	AccessToken string `json:"accessToken"`
}

// NewLoginHandler returns an HTTP handler for user login.
// The refresh token is set as the refresh-token cookie, valid for cookieTTL.
// @Summary User login
// @Description Authenticate user, return an access token and set the refresh-token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AccessTokenResponse "Access token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect password"
// @Failure 404 {object} handlers.ErrorResponse "Cannot find user"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookieTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		session, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusNotFound, "Cannot find user")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Incorrect password")
			default:
				writeInternalError(w, err)
			}
			return
		}

		setRefreshTokenCookie(w, session.RefreshToken, cookieTTL)
		writeJSON(w, http.StatusOK, AccessTokenResponse{AccessToken: session.AccessToken})
	}
}
