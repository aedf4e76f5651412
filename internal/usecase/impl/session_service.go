package impl

import (
	"context"
	"log/slog"

	deliverycontext "scoop/internal/delivery/context"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies the name and password and issues a token pair.
// Unknown names and wrong passwords are indistinguishable to the caller.
func (srv *sessionService) SignIn(ctx context.Context, name, password string) (*usecase.SignInResult, error) {
	user, err := srv.userRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Info("Sign-in for unknown user", slog.String("name", name))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(password, user.Password) {
		srv.log(ctx).Info("Sign-in with wrong password", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(service.SubjectOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("User signed in", slog.Any("user_id", user.ID), slog.String("role", user.RoleName().String()))

	return &usecase.SignInResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh issues a new access token for the subject of a refresh token.
// The user must still exist; its current name and role are used.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return "", domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID, repository.IncludeRole)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", domainerrors.ErrRefreshTokenInvalid
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(service.SubjectOf(user))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return accessToken, nil
}
