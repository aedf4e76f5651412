// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages the catalog and every account.
	RoleAdmin Role = "ADMIN"
	// RoleClient owns an address and zero or more members.
	RoleClient Role = "CLIENT"
	// RoleMember belongs to exactly one client.
	RoleMember Role = "MEMBER"
)

// AllRoles lists every role in a stable order.
var AllRoles = Roles{RoleAdmin, RoleClient, RoleMember}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleMember:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RoleRecord is the persisted row behind a Role name.
type RoleRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      Role      `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
