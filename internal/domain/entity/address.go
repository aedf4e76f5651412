package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery location identified by its (House, Square) pair,
// which is unique across the system.
type Address struct {
	ID        uuid.UUID `json:"id"`
	House     string    `json:"house"`
	Square    string    `json:"square"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddressPatch carries the address fields that may change on update.
type AddressPatch struct {
	House  *string
	Square *string
}

// IsEmpty reports whether the patch carries no field.
func (p AddressPatch) IsEmpty() bool {
	return p.House == nil && p.Square == nil
}
