package handler

import (
	"log/slog"
	"net/http"

	"scoop/internal/delivery/api/middleware"
	deliverycontext "scoop/internal/delivery/context"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves sign-in and token refresh.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest represents the request body for signing in.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the refresh token. The Authorization header
// is read when the body has none.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse is the body of a successful refresh.
type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// SignIn handles POST /signin.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.sessionUC.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Sign-in rejected",
			slog.String("username", req.Username),
			slog.Any("error", err),
		)

		return err
	}

	return c.JSON(http.StatusOK, result)
}

// RefreshToken handles POST /refresh-token.
func (h *SessionHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return bindError(err)
		}
	}

	token := req.RefreshToken
	if token == "" {
		token, _ = middleware.BearerToken(c)
	}
	if token == "" {
		return domainerrors.ErrValidationFailed.WithMessage("refreshToken must be a string and not empty")
	}

	accessToken, err := h.sessionUC.Refresh(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RefreshTokenResponse{AccessToken: accessToken})
}
