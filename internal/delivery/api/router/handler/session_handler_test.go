package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	mockusecase "scoop/internal/mocks/usecase"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionServer(t *testing.T) (*testServer, *mockusecase.MockSessionUsecase) {
	srv := newTestServer(t)
	sessions := mockusecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{
		SessionUC: sessions,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	srv.e.POST("/signin", h.SignIn)
	srv.e.POST("/refresh-token", h.RefreshToken)

	return srv, sessions
}

func TestSessionHandler_SignIn(t *testing.T) {
	srv, sessions := newSessionServer(t)
	user := &entity.User{ID: uuid.New(), Name: "Test Admin"}
	sessions.On("SignIn", mock.Anything, "Test Admin", "123").
		Return(&usecase.SignInResult{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

	rec := srv.do(t, http.MethodPost, "/signin", map[string]string{"username": "Test Admin", "password": "123"}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "access", body["accessToken"])
	assert.Equal(t, "refresh", body["refreshToken"])
	assert.Equal(t, "Test Admin", body["user"].(map[string]any)["name"])
	assert.NotContains(t, body["user"], "password")
}

func TestSessionHandler_SignIn_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		body        any
		setup       func(sessions *mockusecase.MockSessionUsecase)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing password",
			body:        map[string]string{"username": "ana"},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "password must be a string and not empty",
		},
		{
			name:        "username of wrong type",
			body:        `{"username": 42, "password": "x"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "username must be a string and not empty",
		},
		{
			name: "wrong credentials",
			body: map[string]string{"username": "ana", "password": "nope"},
			setup: func(sessions *mockusecase.MockSessionUsecase) {
				sessions.On("SignIn", mock.Anything, "ana", "nope").Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, sessions := newSessionServer(t)
			if tt.setup != nil {
				tt.setup(sessions)
			}

			rec := srv.do(t, http.MethodPost, "/signin", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
		})
	}
}

func TestSessionHandler_RefreshToken(t *testing.T) {
	t.Run("token in body", func(t *testing.T) {
		srv, sessions := newSessionServer(t)
		sessions.On("Refresh", mock.Anything, "refresh").Return("new-access", nil)

		rec := srv.do(t, http.MethodPost, "/refresh-token", map[string]string{"refreshToken": "refresh"}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "new-access", decodeJSON[RefreshTokenResponse](t, rec).AccessToken)
	})

	t.Run("token in authorization header", func(t *testing.T) {
		srv, sessions := newSessionServer(t)
		sessions.On("Refresh", mock.Anything, "from-header").Return("new-access", nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
		req.Header.Set("Authorization", "Bearer from-header")
		rec := srv.send(req, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		srv, sessions := newSessionServer(t)
		sessions.On("Refresh", mock.Anything, "stale").Return("", domainerrors.ErrRefreshTokenInvalid)

		rec := srv.do(t, http.MethodPost, "/refresh-token", map[string]string{"refreshToken": "stale"}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized: Invalid refresh token", decodeError(t, rec).Message)
	})

	t.Run("no token", func(t *testing.T) {
		srv, _ := newSessionServer(t)

		rec := srv.do(t, http.MethodPost, "/refresh-token", map[string]string{}, "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "refreshToken must be a string and not empty", decodeError(t, rec).Message)
	})
}
