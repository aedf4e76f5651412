// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
)

// Relations a user lookup may preload.
const (
	IncludeRole   = "role"
	IncludeAdmin  = "admin"
	IncludeClient = "client"
	IncludeMember = "member"
)

// SubRoleLink is the full set of role pointers written onto a user.
type SubRoleLink struct {
	RoleID   uuid.UUID
	AdminID  *uuid.UUID
	ClientID *uuid.UUID
	MemberID *uuid.UUID
}

// UserRepository defines the standard operations for user persistence.
// Lookups that miss return domainerrors.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by ID, preloading the named relations.
	FindByID(ctx context.Context, id uuid.UUID, includes ...string) (*entity.User, error)

	// FindByName retrieves a user with its role loaded.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	List(ctx context.Context, q listing.Query) ([]*entity.User, int64, error)

	// Update applies the non-nil patch fields. Password must already be hashed.
	Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error)

	// LinkSubRole overwrites the role id and all three sub-role pointers.
	LinkSubRole(ctx context.Context, id uuid.UUID, link SubRoleLink) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteMany removes every listed user and reports how many existed.
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// RoleRepository persists the role rows.
type RoleRepository interface {
	// Ensure returns the role row, creating it when absent.
	Ensure(ctx context.Context, name entity.Role) (*entity.RoleRecord, error)
	FindByName(ctx context.Context, name entity.Role) (*entity.RoleRecord, error)
	List(ctx context.Context) ([]*entity.RoleRecord, error)
}

// AdminRepository persists the admin sub-role.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	List(ctx context.Context, q listing.Query) ([]*entity.Admin, int64, error)
}

// Relations a client lookup may preload.
const (
	IncludeAddress = "address"
	IncludeMembers = "members"
)

// ClientRepository persists the client sub-role.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id uuid.UUID, includes ...string) (*entity.Client, error)
	List(ctx context.Context, q listing.Query) ([]*entity.Client, int64, error)
	SetAddress(ctx context.Context, id, addressID uuid.UUID) error
	SetUser(ctx context.Context, id, userID uuid.UUID) error
}

// MemberRepository persists the member sub-role.
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Member, error)
	List(ctx context.Context, q listing.Query) ([]*entity.Member, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.MemberPatch) (*entity.Member, error)
	SetUser(ctx context.Context, id, userID uuid.UUID) error
	// UserIDsByClient returns the user ids of every member of a client.
	UserIDsByClient(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error)
}
