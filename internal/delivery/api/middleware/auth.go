package middleware

import (
	"strings"

	deliverycontext "scoop/internal/delivery/context"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/policy"
	"scoop/internal/domain/service"
	"scoop/internal/usecase"

	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller on
// the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := BearerToken(c)
		if !ok {
			return domainerrors.ErrNoAccessToken
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidAccessToken
		}

		caller := usecase.Caller{
			UserID: claims.UserID,
			Name:   claims.Name,
			Role:   claims.Role,
		}
		c.Set(callerKey, caller)

		deliverycontext.EnrichLogger(c, "user_id", caller.UserID.String(), "role", caller.Role.String())

		return next(c)
	}
}

// RequireAction rejects callers whose role can never perform action.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAction(action policy.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := GetCaller(c)
			if !ok {
				return domainerrors.ErrNoAccessToken
			}
			if !policy.MayAttempt(caller.Role, action) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetCaller returns the caller stored by Authenticate.
func GetCaller(c echo.Context) (usecase.Caller, bool) {
	caller, ok := c.Get(callerKey).(usecase.Caller)
	return caller, ok
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(tokenString) == "" {
		return "", false
	}

	return strings.TrimSpace(tokenString), true
}
