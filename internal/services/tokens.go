package services

//go:generate mockgen -source=tokens.go -destination=tokens_mock.go -package=services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-movie-lists/internal/jwt"
	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
)

// TokenSigner signs and verifies one class of token.
type TokenSigner interface {
	Generate(ctx context.Context, username string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RefreshTokenSaver persists issued refresh tokens.
type RefreshTokenSaver interface {
	Save(ctx context.Context, token, username string) error
}

// TokenService issues and verifies access and refresh tokens.
// Access tokens are stateless; refresh tokens are recorded before they are handed out.
type TokenService struct {
	access  TokenSigner
	refresh TokenSigner
	saver   RefreshTokenSaver
}

// NewTokenService creates a new TokenService.
func NewTokenService(access, refresh TokenSigner, saver RefreshTokenSaver) *TokenService {
	return &TokenService{
		access:  access,
		refresh: refresh,
		saver:   saver,
	}
}

// IssueAccessToken signs a short-lived access token for username.
func (s *TokenService) IssueAccessToken(ctx context.Context, username string) (string, error) {
	token, err := s.access.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to sign access token", "username", username, "err", err)
		return "", err
	}
	return token, nil
}

// IssueRefreshToken signs a long-lived refresh token for username and records it.
// No token is returned unless the record was written.
func (s *TokenService) IssueRefreshToken(ctx context.Context, username string) (string, error) {
	token, err := s.refresh.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to sign refresh token", "username", username, "err", err)
		return "", err
	}

	if err := s.saver.Save(ctx, token, username); err != nil {
		logger.Log.Errorw("failed to persist refresh token", "username", username, "err", err)
		return "", fmt.Errorf("persist refresh token: %w", err)
	}

	return token, nil
}

// VerifyAccessToken returns the username carried by a valid access token.
// The error wraps jwt.ErrTokenExpired or jwt.ErrTokenInvalid.
func (s *TokenService) VerifyAccessToken(ctx context.Context, token string) (string, error) {
	claims, err := s.access.GetClaims(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

// VerifyRefreshToken returns the username carried by a valid refresh token.
// The error wraps jwt.ErrTokenExpired or jwt.ErrTokenInvalid.
func (s *TokenService) VerifyRefreshToken(ctx context.Context, token string) (string, error) {
	claims, err := s.refresh.GetClaims(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}
