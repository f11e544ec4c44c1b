package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-movie-lists/internal/models"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccountListsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountListsGetter(ctrl)
	links := []models.ListLink{
		{ListName: "Favorites", ListID: "652f1c2a9d3e4b0012345678"},
		{ListName: "Watch later", ListID: "652f1c2a9d3e4b0012345679"},
	}

	tests := []struct {
		name         string
		actor        string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expected     []models.ListLink
	}{
		{
			name:      "own lists",
			actor:     "alice",
			inputBody: AccountListsRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().GetAccountLists(gomock.Any(), "alice", "alice").Return(links, nil)
			},
			expectedCode: http.StatusOK,
			expected:     links,
		},
		{
			name:      "no lists",
			actor:     "alice",
			inputBody: AccountListsRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().GetAccountLists(gomock.Any(), "alice", "alice").Return([]models.ListLink{}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     []models.ListLink{},
		},
		{
			name:         "unauthenticated",
			inputBody:    AccountListsRequest{Username: "alice"},
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid JSON",
			actor:        "alice",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "another account",
			actor:     "mallory",
			inputBody: AccountListsRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().GetAccountLists(gomock.Any(), "mallory", "alice").Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:      "unknown user",
			actor:     "ghost",
			inputBody: AccountListsRequest{Username: "ghost"},
			mockSetup: func() {
				mockSvc.EXPECT().GetAccountLists(gomock.Any(), "ghost", "ghost").Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "store error",
			actor:     "alice",
			inputBody: AccountListsRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().GetAccountLists(gomock.Any(), "alice", "alice").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/getaccountlists", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewGetAccountListsHandler(mockSvc, userGetter(tt.actor)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var got []models.ListLink
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
