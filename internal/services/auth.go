package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists    = errors.New("username already exists")
	ErrUserDoesNotExist     = errors.New("username does not exist")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidUsername      = errors.New("username must be between 3 and 20 characters")
	ErrInvalidPassword      = errors.New("password must be between 1 and 72 bytes")
	ErrRefreshTokenMissing  = errors.New("refresh token missing")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenInvalid  = errors.New("refresh token invalid or expired")
)

// PasswordCost is the bcrypt cost used for new passwords.
const PasswordCost = 10

// RefreshPolicy decides what happens to a refresh token when it is exchanged for an access token.
type RefreshPolicy string

const (
	// RefreshPolicyReuse keeps the presented token until logout or expiry.
	RefreshPolicyReuse RefreshPolicy = "reuse"
	// RefreshPolicyRotate replaces the presented token with a new one on every refresh.
	RefreshPolicyRotate RefreshPolicy = "rotate"
)

// ParseRefreshPolicy parses a policy name.
func ParseRefreshPolicy(s string) (RefreshPolicy, error) {
	switch p := RefreshPolicy(s); p {
	case RefreshPolicyReuse, RefreshPolicyRotate:
		return p, nil
	default:
		return "", fmt.Errorf("unknown refresh token policy %q", s)
	}
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	UpdateLastLogin(ctx context.Context, username string, at time.Time) (bool, error)
}

// RefreshTokenReader looks up persisted refresh tokens.
type RefreshTokenReader interface {
	GetByToken(ctx context.Context, token string) (*models.RefreshTokenDB, error)
	GetByUsername(ctx context.Context, username string) (*models.RefreshTokenDB, error)
}

// RefreshTokenDeleter removes persisted refresh tokens.
type RefreshTokenDeleter interface {
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

// TokenIssuer is the part of TokenService the auth flows need.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, username string) (string, error)
	IssueRefreshToken(ctx context.Context, username string) (string, error)
	VerifyRefreshToken(ctx context.Context, token string) (string, error)
}

// Session is the pair of tokens handed to a client on login or signup.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// Refreshed is the result of exchanging a refresh token.
// RefreshToken is set only when the token was rotated.
type Refreshed struct {
	AccessToken  string
	Username     string
	RefreshToken string
}

// AuthService handles signup, login, token refresh and logout.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	tokens    TokenIssuer
	rtReader  RefreshTokenReader
	rtDeleter RefreshTokenDeleter
	policy    RefreshPolicy
	now       func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	tokens TokenIssuer,
	rtReader RefreshTokenReader,
	rtDeleter RefreshTokenDeleter,
	policy RefreshPolicy,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		tokens:    tokens,
		rtReader:  rtReader,
		rtDeleter: rtDeleter,
		policy:    policy,
		now:       time.Now,
	}
}

// Signup registers a new user and opens a fresh session. Signup never reuses a refresh token.
func (svc *AuthService) Signup(ctx context.Context, username, password string) (*Session, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	if n := utf8.RuneCountInString(username); n < models.UsernameMinLength || n > models.UsernameMaxLength {
		logger.Log.Infow("username has invalid length", "length", n)
		return nil, ErrInvalidUsername
	}
	if password == "" || len(password) > 72 {
		return nil, ErrInvalidPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	now := svc.now()
	user = &models.UserDB{
		Username:      username,
		Password:      string(hashedPassword),
		CreationDate:  now,
		LastLoginDate: now,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			logger.Log.Infow("user created concurrently", "username", username)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	accessToken, err := svc.tokens.IssueAccessToken(ctx, username)
	if err != nil {
		return nil, err
	}

	refreshToken, err := svc.tokens.IssueRefreshToken(ctx, username)
	if err != nil {
		return nil, err
	}

	return &Session{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Login authenticates a user and returns an access token plus the user's refresh token.
// An existing valid refresh token is handed back unchanged so a user has a single live session.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	accessToken, err := svc.tokens.IssueAccessToken(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := svc.writer.UpdateLastLogin(ctx, username, svc.now()); err != nil {
		logger.Log.Errorw("failed to update last login date", "username", username, "err", err)
		return nil, err
	}

	refreshToken, err := svc.currentRefreshToken(ctx, username)
	if err != nil {
		return nil, err
	}

	return &Session{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// currentRefreshToken returns the stored refresh token of username if it still verifies,
// otherwise drops it and issues a new one.
func (svc *AuthService) currentRefreshToken(ctx context.Context, username string) (string, error) {
	existing, err := svc.rtReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "username", username, "err", err)
		return "", err
	}

	if existing != nil {
		_, verr := svc.tokens.VerifyRefreshToken(ctx, existing.Token)
		if verr == nil {
			logger.Log.Infow("reusing existing refresh token", "username", username)
			return existing.Token, nil
		}

		logger.Log.Infow("stored refresh token no longer valid, replacing it", "username", username, "reason", verr)
		if _, err := svc.rtDeleter.DeleteByToken(ctx, existing.Token); err != nil {
			logger.Log.Errorw("failed to delete stale refresh token", "username", username, "err", err)
			return "", err
		}
	}

	logger.Log.Infow("issuing new refresh token", "username", username)
	return svc.tokens.IssueRefreshToken(ctx, username)
}

// Refresh exchanges a refresh token for a new access token.
// A token that fails verification is deleted from the store.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*Refreshed, error) {
	if refreshToken == "" {
		return nil, ErrRefreshTokenMissing
	}

	record, err := svc.rtReader.GetByToken(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "err", err)
		return nil, err
	}
	if record == nil {
		logger.Log.Infow("refresh token does not exist")
		return nil, ErrRefreshTokenNotFound
	}

	username, verr := svc.tokens.VerifyRefreshToken(ctx, refreshToken)
	if verr == nil && username != record.Username {
		verr = fmt.Errorf("token subject %q does not match record owner %q", username, record.Username)
	}
	if verr != nil {
		logger.Log.Infow("invalid refresh token, deleting it", "username", record.Username, "reason", verr)
		if _, err := svc.rtDeleter.DeleteByToken(ctx, refreshToken); err != nil {
			logger.Log.Errorw("failed to delete invalid refresh token", "err", err)
			return nil, err
		}
		return nil, ErrRefreshTokenInvalid
	}

	accessToken, err := svc.tokens.IssueAccessToken(ctx, username)
	if err != nil {
		return nil, err
	}

	res := &Refreshed{AccessToken: accessToken, Username: username}

	if svc.policy == RefreshPolicyRotate {
		if _, err := svc.rtDeleter.DeleteByToken(ctx, refreshToken); err != nil {
			logger.Log.Errorw("failed to delete rotated refresh token", "username", username, "err", err)
			return nil, err
		}
		if res.RefreshToken, err = svc.tokens.IssueRefreshToken(ctx, username); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Logout deletes the session identified by refreshToken.
func (svc *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return ErrRefreshTokenMissing
	}

	record, err := svc.rtReader.GetByToken(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "err", err)
		return err
	}
	if record == nil {
		logger.Log.Infow("refresh token does not exist")
		return ErrRefreshTokenNotFound
	}

	if _, err := svc.rtDeleter.DeleteByToken(ctx, refreshToken); err != nil {
		logger.Log.Errorw("failed to delete refresh token", "username", record.Username, "err", err)
		return err
	}

	return nil
}
