package service

import (
	"time"

	"scoop/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	RoleID uuid.UUID   `json:"roleId"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// Subject identifies whom a token pair is issued for.
type Subject struct {
	UserID uuid.UUID
	Name   string
	RoleID uuid.UUID
	Role   entity.Role
}

// SubjectOf builds the token subject from a user with its role loaded.
func SubjectOf(user *entity.User) Subject {
	return Subject{
		UserID: user.ID,
		Name:   user.Name,
		RoleID: user.RoleID,
		Role:   user.RoleName(),
	}
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token.
	GenerateTokens(subject Subject) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates an access token only.
	GenerateAccessToken(subject Subject) (string, error)

	// ValidateAccessToken checks an access token's signature, expiry and type.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token's signature, expiry and type.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
