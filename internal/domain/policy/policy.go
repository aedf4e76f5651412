// Package policy decides whether a caller may perform an action.
package policy

import (
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
)

// Action names an operation guarded by role.
type Action string

const (
	CatalogRead  Action = "catalog:read"
	CatalogWrite Action = "catalog:write"

	UserList       Action = "user:list"
	UserRead       Action = "user:read"
	UserUpdate     Action = "user:update"
	UserDelete     Action = "user:delete"
	UserDeleteMany Action = "user:delete-many"

	AdminManage Action = "admin:manage"

	ClientCreate        Action = "client:create"
	ClientList          Action = "client:list"
	ClientRead          Action = "client:read"
	ClientUpdate        Action = "client:update"
	ClientDelete        Action = "client:delete"
	ClientDeleteMany    Action = "client:delete-many"
	ClientChangeAddress Action = "client:change-address"
	ClientSwap          Action = "client:swap"

	MemberCreate     Action = "member:create"
	MemberList       Action = "member:list"
	MemberRead       Action = "member:read"
	MemberUpdate     Action = "member:update"
	MemberDelete     Action = "member:delete"
	MemberDeleteMany Action = "member:delete-many"

	AddressManage Action = "address:manage"
	RoleManage    Action = "role:manage"

	OrderPlace Action = "order:place"
)

type rule struct {
	// always may perform the action on any resource.
	always entity.Roles
	// owners may perform it only on resources they own.
	owners entity.Roles
}

var (
	admin    = entity.Roles{entity.RoleAdmin}
	everyone = entity.AllRoles
)

var rules = map[Action]rule{
	CatalogRead:  {always: everyone},
	CatalogWrite: {always: admin},

	UserList:       {always: admin},
	UserRead:       {always: admin, owners: entity.Roles{entity.RoleClient, entity.RoleMember}},
	UserUpdate:     {always: admin, owners: entity.Roles{entity.RoleClient, entity.RoleMember}},
	UserDelete:     {always: admin, owners: entity.Roles{entity.RoleClient}},
	UserDeleteMany: {always: admin},

	AdminManage: {always: admin},

	ClientCreate:        {always: admin},
	ClientList:          {always: admin},
	ClientRead:          {always: admin, owners: entity.Roles{entity.RoleClient}},
	ClientUpdate:        {always: admin, owners: entity.Roles{entity.RoleClient}},
	ClientDelete:        {always: admin, owners: entity.Roles{entity.RoleClient}},
	ClientDeleteMany:    {always: admin},
	ClientChangeAddress: {always: admin, owners: entity.Roles{entity.RoleClient}},
	ClientSwap:          {always: admin},

	MemberCreate:     {always: admin, owners: entity.Roles{entity.RoleClient}},
	MemberList:       {always: admin, owners: entity.Roles{entity.RoleClient}},
	MemberRead:       {always: admin, owners: entity.Roles{entity.RoleClient, entity.RoleMember}},
	MemberUpdate:     {always: admin, owners: entity.Roles{entity.RoleClient}},
	MemberDelete:     {always: admin, owners: entity.Roles{entity.RoleClient}},
	MemberDeleteMany: {always: admin},

	AddressManage: {always: admin},
	RoleManage:    {always: admin},

	OrderPlace: {always: everyone},
}

// Authorize returns nil when role may perform action. owns reports whether
// the caller owns the target resource.
func Authorize(role entity.Role, action Action, owns bool) error {
	r, ok := rules[action]
	if !ok {
		return domainerrors.ErrForbidden
	}
	if r.always.Contains(role) {
		return nil
	}
	if owns && r.owners.Contains(role) {
		return nil
	}

	return domainerrors.ErrForbidden
}

// MayAttempt reports whether role could perform action on at least some
// resource. Route guards use it before ownership is known.
func MayAttempt(role entity.Role, action Action) bool {
	r, ok := rules[action]
	if !ok {
		return false
	}

	return r.always.Contains(role) || r.owners.Contains(role)
}

// Unrestricted reports whether role may perform action on any resource.
func Unrestricted(role entity.Role, action Action) bool {
	r, ok := rules[action]
	return ok && r.always.Contains(role)
}
