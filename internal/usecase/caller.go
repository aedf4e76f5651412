// Package usecase contains the application-specific business rules.
package usecase

import (
	"scoop/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller is the authenticated user a request acts for, as carried by its
// access token.
type Caller struct {
	UserID uuid.UUID
	Name   string
	Role   entity.Role
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// Account carries the credentials of a user about to be created.
type Account struct {
	Name     string
	Password string
}
