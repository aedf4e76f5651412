package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	House     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_addresses_house_square"`
	Square    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_addresses_house_square"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
