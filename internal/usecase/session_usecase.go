package usecase

import (
	"context"

	"scoop/internal/domain/entity"
)

// SignInResult is returned on successful sign-in.
type SignInResult struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

// SessionUsecase issues tokens.
type SessionUsecase interface {
	// SignIn checks the credentials and returns a token pair.
	SignIn(ctx context.Context, name, password string) (*SignInResult, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
