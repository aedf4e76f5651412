// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record shared by every role. At most one of
// AdminID, ClientID and MemberID is set.
type User struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Password  string      `json:"-" msgpack:"-"`
	RoleID    uuid.UUID   `json:"roleId"`
	Role      *RoleRecord `json:"role,omitempty"`
	AdminID   *uuid.UUID  `json:"adminId"`
	ClientID  *uuid.UUID  `json:"clientId"`
	MemberID  *uuid.UUID  `json:"memberId"`
	Admin     *Admin      `json:"admin,omitempty"`
	Client    *Client     `json:"client,omitempty"`
	Member    *Member     `json:"member,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// HasSingleSubRole reports whether the sub-role pointers respect the
// at-most-one invariant.
func (u *User) HasSingleSubRole() bool {
	set := 0
	for _, id := range []*uuid.UUID{u.AdminID, u.ClientID, u.MemberID} {
		if id != nil {
			set++
		}
	}

	return set <= 1
}

// RoleName returns the role name when the role was loaded.
func (u *User) RoleName() Role {
	if u.Role == nil {
		return ""
	}

	return u.Role.Name
}

// UserPatch carries the user fields that may change on update.
type UserPatch struct {
	Name     *string
	Password *string
}

// IsEmpty reports whether the patch carries no field.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Password == nil
}

// Admin is the sub-role owning catalog items.
type Admin struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Client is the sub-role that owns an address and a set of members.
type Client struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	AddressID uuid.UUID `json:"addressId"`
	Address   *Address  `json:"address,omitempty"`
	User      *User     `json:"user,omitempty"`
	Members   []*Member `json:"members,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Member is the sub-role attached to exactly one client.
type Member struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ClientID     uuid.UUID `json:"clientId"`
	Relationship string    `json:"relationship"`
	User         *User     `json:"user,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MemberPatch carries the member fields that may change on update.
type MemberPatch struct {
	Relationship *string
	ClientID     *uuid.UUID
}

// IsEmpty reports whether the patch carries no field.
func (p MemberPatch) IsEmpty() bool {
	return p.Relationship == nil && p.ClientID == nil
}
