package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(16);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserModel mirrors the 'users' table. The sub-role pointers carry no
// foreign key; the sub-role tables reference users instead.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(100);unique;not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	RoleID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role      *RoleModel `gorm:"foreignKey:RoleID;references:ID"`
	AdminID   *uuid.UUID `gorm:"type:uuid"`
	ClientID  *uuid.UUID `gorm:"type:uuid"`
	MemberID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Admin  *AdminModel  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Client *ClientModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Member *MemberModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminModel mirrors the 'admins' table.
type AdminModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// ClientModel mirrors the 'clients' table.
type ClientModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID     `gorm:"type:uuid;unique;not null"`
	AddressID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Address   *AddressModel `gorm:"foreignKey:AddressID;references:ID;constraint:OnDelete:RESTRICT"`
	Members   []MemberModel `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// MemberModel mirrors the 'members' table.
type MemberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;unique;not null"`
	ClientID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Relationship string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
