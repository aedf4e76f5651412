package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/policy"
	"scoop/internal/domain/service"
	mockservice "scoop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockservice.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrNoAccessToken.ErrorCode(),
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrNoAccessToken.ErrorCode(),
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockservice.MockTokenService) {
				tokens.On("ValidateAccessToken", "bad").Return(nil, assert.AnError)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.ErrInvalidAccessToken.ErrorCode(),
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockservice.MockTokenService) {
				tokens.On("ValidateAccessToken", "good").
					Return(&service.Claims{UserID: userID, Name: "ana", Role: entity.RoleClient}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			e := newErrorEcho()
			auth := NewAuthMiddleware(tokens)
			e.GET("/me", func(c echo.Context) error {
				caller, ok := GetCaller(c)
				assert.True(t, ok)
				assert.Equal(t, userID, caller.UserID)
				assert.Equal(t, entity.RoleClient, caller.Role)

				return c.NoContent(http.StatusOK)
			}, auth.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestRequireAction(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		action     policy.Action
		wantStatus int
	}{
		{name: "admin writes catalog", role: entity.RoleAdmin, action: policy.CatalogWrite, wantStatus: http.StatusOK},
		{name: "client cannot write catalog", role: entity.RoleClient, action: policy.CatalogWrite, wantStatus: http.StatusUnauthorized},
		{name: "member reads catalog", role: entity.RoleMember, action: policy.CatalogRead, wantStatus: http.StatusOK},
		{name: "client may try its own client", role: entity.RoleClient, action: policy.ClientRead, wantStatus: http.StatusOK},
		{name: "member cannot list users", role: entity.RoleMember, action: policy.UserList, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockservice.NewMockTokenService(t)
			tokens.On("ValidateAccessToken", "token").
				Return(&service.Claims{UserID: uuid.New(), Role: tt.role}, nil)

			e := newErrorEcho()
			auth := NewAuthMiddleware(tokens)
			e.GET("/guarded", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, auth.Authenticate, auth.RequireAction(tt.action))

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer token")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				body := decodeError(t, rec)
				assert.Equal(t, "INSUFFICIENT_PERMISSIONS", body.Code)
				assert.Equal(t, "Unauthorized: Insufficient permissions", body.Message)
			}
		})
	}
}
