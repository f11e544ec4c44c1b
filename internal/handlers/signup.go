package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-movie-lists/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, password string) (*services.Session, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username, 3 to 20 characters
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// A new account always gets a new refresh token, set as the refresh-token cookie.
// @Summary Register a new user
// @Description Create a new account, return an access token and set the refresh-token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup Request"
// @Success 201 {object} handlers.AccessTokenResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or username length"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signuper, cookieTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		session, err := svc.Signup(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username already exists")
			case errors.Is(err, services.ErrInvalidUsername),
				errors.Is(err, services.ErrInvalidPassword):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		setRefreshTokenCookie(w, session.RefreshToken, cookieTTL)
		writeJSON(w, http.StatusCreated, AccessTokenResponse{AccessToken: session.AccessToken})
	}
}
