package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-movie-lists/internal/jwt"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/repositories"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader    *services.MockUserReader
	writer    *services.MockUserWriter
	tokens    *services.MockTokenIssuer
	rtReader  *services.MockRefreshTokenReader
	rtDeleter *services.MockRefreshTokenDeleter
}

func newAuthService(t *testing.T, policy services.RefreshPolicy) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := authMocks{
		reader:    services.NewMockUserReader(ctrl),
		writer:    services.NewMockUserWriter(ctrl),
		tokens:    services.NewMockTokenIssuer(ctrl),
		rtReader:  services.NewMockRefreshTokenReader(ctrl),
		rtDeleter: services.NewMockRefreshTokenDeleter(ctrl),
	}
	svc := services.NewAuthService(m.reader, m.writer, m.tokens, m.rtReader, m.rtDeleter, policy)
	return svc, m
}

func TestParseRefreshPolicy(t *testing.T) {
	p, err := services.ParseRefreshPolicy("reuse")
	assert.NoError(t, err)
	assert.Equal(t, services.RefreshPolicyReuse, p)

	p, err = services.ParseRefreshPolicy("rotate")
	assert.NoError(t, err)
	assert.Equal(t, services.RefreshPolicyRotate, p)

	_, err = services.ParseRefreshPolicy("sometimes")
	assert.Error(t, err)
}

func TestAuthService_Signup(t *testing.T) {
	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(m authMocks)
		wantErr   error
	}{
		{
			name:     "successful signup",
			username: "alice",
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) error {
						assert.Equal(t, "alice", u.Username)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pass123")))
						cost, err := bcrypt.Cost([]byte(u.Password))
						assert.NoError(t, err)
						assert.Equal(t, services.PasswordCost, cost)
						assert.False(t, u.CreationDate.IsZero())
						assert.Equal(t, u.CreationDate, u.LastLoginDate)
						return nil
					})
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
				m.tokens.EXPECT().IssueRefreshToken(gomock.Any(), "alice").Return("refresh", nil)
			},
		},
		{
			name:     "user already exists",
			username: "bob",
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&models.UserDB{Username: "bob"}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "username too short",
			username: "ab",
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "ab").Return(nil, nil)
			},
			wantErr: services.ErrInvalidUsername,
		},
		{
			name:     "username too long",
			username: strings.Repeat("a", 21),
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), strings.Repeat("a", 21)).Return(nil, nil)
			},
			wantErr: services.ErrInvalidUsername,
		},
		{
			name:     "empty password",
			username: "carol",
			password: "",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, nil)
			},
			wantErr: services.ErrInvalidPassword,
		},
		{
			name:     "reader error",
			username: "eve",
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "eve").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:     "concurrent signup wins the unique index",
			username: "dave",
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "dave").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicateUsername)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "writer error",
			username: "frank",
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "frank").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:     "refresh token persistence error",
			username: "grace",
			password: "pass123",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "grace").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "grace").Return("access", nil)
				m.tokens.EXPECT().IssueRefreshToken(gomock.Any(), "grace").Return("", dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, services.RefreshPolicyReuse)
			tt.mockSetup(m)

			session, err := svc.Signup(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, &services.Session{AccessToken: "access", RefreshToken: "refresh"}, session)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.UserDB{Username: "alice", Password: string(hashed)}
	dbErr := errors.New("db error")

	tests := []struct {
		name        string
		password    string
		mockSetup   func(m authMocks)
		wantSession *services.Session
		wantErr     error
	}{
		{
			name:     "reuses existing valid refresh token",
			password: password,
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
				m.writer.EXPECT().UpdateLastLogin(gomock.Any(), "alice", gomock.Any()).Return(true, nil)
				m.rtReader.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.RefreshTokenDB{Token: "existing", Username: "alice"}, nil)
				m.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "existing").Return("alice", nil)
			},
			wantSession: &services.Session{AccessToken: "access", RefreshToken: "existing"},
		},
		{
			name:     "issues refresh token when none exists",
			password: password,
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
				m.writer.EXPECT().UpdateLastLogin(gomock.Any(), "alice", gomock.Any()).Return(true, nil)
				m.rtReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.tokens.EXPECT().IssueRefreshToken(gomock.Any(), "alice").Return("fresh", nil)
			},
			wantSession: &services.Session{AccessToken: "access", RefreshToken: "fresh"},
		},
		{
			name:     "replaces stored refresh token that expired",
			password: password,
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
				m.writer.EXPECT().UpdateLastLogin(gomock.Any(), "alice", gomock.Any()).Return(true, nil)
				m.rtReader.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.RefreshTokenDB{Token: "stale", Username: "alice"}, nil)
				m.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "stale").Return("", jwt.ErrTokenExpired)
				m.rtDeleter.EXPECT().DeleteByToken(gomock.Any(), "stale").Return(int64(1), nil)
				m.tokens.EXPECT().IssueRefreshToken(gomock.Any(), "alice").Return("fresh", nil)
			},
			wantSession: &services.Session{AccessToken: "access", RefreshToken: "fresh"},
		},
		{
			name:     "user does not exist",
			password: password,
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:     "invalid password",
			password: "wrongpass",
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			password: password,
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:     "last login update error",
			password: password,
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
				m.writer.EXPECT().UpdateLastLogin(gomock.Any(), "alice", gomock.Any()).Return(false, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:     "refresh token lookup error",
			password: password,
			mockSetup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
				m.writer.EXPECT().UpdateLastLogin(gomock.Any(), "alice", gomock.Any()).Return(true, nil)
				m.rtReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, services.RefreshPolicyReuse)
			tt.mockSetup(m)

			session, err := svc.Login(context.Background(), "alice", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantSession, session)
			}
		})
	}
}

func TestAuthService_Login_UpdatesLastLoginDate(t *testing.T) {
	svc, m := newAuthService(t, services.RefreshPolicyReuse)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	before := time.Now()
	m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{Username: "alice", Password: string(hashed)}, nil)
	m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
	m.writer.EXPECT().UpdateLastLogin(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, at time.Time) (bool, error) {
			assert.False(t, at.Before(before))
			return true, nil
		})
	m.rtReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	m.tokens.EXPECT().IssueRefreshToken(gomock.Any(), "alice").Return("fresh", nil)

	_, err = svc.Login(context.Background(), "alice", "secret")
	assert.NoError(t, err)
}

func TestAuthService_Refresh(t *testing.T) {
	dbErr := errors.New("db error")
	record := &models.RefreshTokenDB{Token: "rt", Username: "alice"}

	tests := []struct {
		name      string
		token     string
		policy    services.RefreshPolicy
		mockSetup func(m authMocks)
		want      *services.Refreshed
		wantErr   error
	}{
		{
			name:      "missing token",
			token:     "",
			policy:    services.RefreshPolicyReuse,
			mockSetup: func(m authMocks) {},
			wantErr:   services.ErrRefreshTokenMissing,
		},
		{
			name:   "token not stored",
			token:  "rt",
			policy: services.RefreshPolicyReuse,
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(nil, nil)
			},
			wantErr: services.ErrRefreshTokenNotFound,
		},
		{
			name:   "lookup error",
			token:  "rt",
			policy: services.RefreshPolicyReuse,
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:   "invalid token is deleted",
			token:  "rt",
			policy: services.RefreshPolicyReuse,
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(record, nil)
				m.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "rt").Return("", jwt.ErrTokenInvalid)
				m.rtDeleter.EXPECT().DeleteByToken(gomock.Any(), "rt").Return(int64(1), nil)
			},
			wantErr: services.ErrRefreshTokenInvalid,
		},
		{
			name:   "token for another user is deleted",
			token:  "rt",
			policy: services.RefreshPolicyReuse,
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(record, nil)
				m.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "rt").Return("mallory", nil)
				m.rtDeleter.EXPECT().DeleteByToken(gomock.Any(), "rt").Return(int64(1), nil)
			},
			wantErr: services.ErrRefreshTokenInvalid,
		},
		{
			name:   "delete of invalid token fails",
			token:  "rt",
			policy: services.RefreshPolicyReuse,
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(record, nil)
				m.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "rt").Return("", jwt.ErrTokenExpired)
				m.rtDeleter.EXPECT().DeleteByToken(gomock.Any(), "rt").Return(int64(0), dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:   "valid token keeps session",
			token:  "rt",
			policy: services.RefreshPolicyReuse,
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(record, nil)
				m.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "rt").Return("alice", nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
			},
			want: &services.Refreshed{AccessToken: "access", Username: "alice"},
		},
		{
			name:   "valid token rotated",
			token:  "rt",
			policy: services.RefreshPolicyRotate,
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(record, nil)
				m.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "rt").Return("alice", nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), "alice").Return("access", nil)
				m.rtDeleter.EXPECT().DeleteByToken(gomock.Any(), "rt").Return(int64(1), nil)
				m.tokens.EXPECT().IssueRefreshToken(gomock.Any(), "alice").Return("rt2", nil)
			},
			want: &services.Refreshed{AccessToken: "access", Username: "alice", RefreshToken: "rt2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, tt.policy)
			tt.mockSetup(m)

			got, err := svc.Refresh(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		token     string
		mockSetup func(m authMocks)
		wantErr   error
	}{
		{
			name:      "missing token",
			mockSetup: func(m authMocks) {},
			wantErr:   services.ErrRefreshTokenMissing,
		},
		{
			name:  "token not stored",
			token: "rt",
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").Return(nil, nil)
			},
			wantErr: services.ErrRefreshTokenNotFound,
		},
		{
			name:  "success",
			token: "rt",
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").
					Return(&models.RefreshTokenDB{Token: "rt", Username: "alice"}, nil)
				m.rtDeleter.EXPECT().DeleteByToken(gomock.Any(), "rt").Return(int64(1), nil)
			},
		},
		{
			name:  "delete error",
			token: "rt",
			mockSetup: func(m authMocks) {
				m.rtReader.EXPECT().GetByToken(gomock.Any(), "rt").
					Return(&models.RefreshTokenDB{Token: "rt", Username: "alice"}, nil)
				m.rtDeleter.EXPECT().DeleteByToken(gomock.Any(), "rt").Return(int64(0), dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, services.RefreshPolicyReuse)
			tt.mockSetup(m)

			err := svc.Logout(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
