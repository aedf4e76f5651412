package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoop/internal/delivery/api/middleware"
	"scoop/internal/delivery/api/validator"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/service"
	mockservice "scoop/internal/mocks/service"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// testServer is an echo instance wired like the API server, with one
// bearer token per role.
type testServer struct {
	e       *echo.Echo
	auth    *middleware.AuthMiddleware
	callers map[entity.Role]usecase.Caller
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	tokens := mockservice.NewMockTokenService(t)
	callers := make(map[entity.Role]usecase.Caller)
	for _, role := range entity.AllRoles {
		caller := usecase.Caller{UserID: uuid.New(), Name: "test " + role.String(), Role: role}
		callers[role] = caller
		tokens.On("ValidateAccessToken", tokenFor(role)).
			Return(&service.Claims{UserID: caller.UserID, Name: caller.Name, Role: role}, nil).Maybe()
	}

	return &testServer{e: e, auth: middleware.NewAuthMiddleware(tokens), callers: callers}
}

func tokenFor(role entity.Role) string {
	return "token-" + role.String()
}

// do sends a JSON request as role. An empty role sends no token.
func (s *testServer) do(t *testing.T, method, path string, body any, role entity.Role) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return s.send(req, role)
}

func (s *testServer) send(req *http.Request, role entity.Role) *httptest.ResponseRecorder {
	if role != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenFor(role))
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ErrorResponse {
	t.Helper()
	return decodeJSON[domainerrors.ErrorResponse](t, rec)
}

func ptr[T any](v T) *T {
	return &v
}
