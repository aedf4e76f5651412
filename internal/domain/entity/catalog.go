package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatalogItem holds the fields shared by creams, toppings and products.
// AdminID is fixed at creation and never changes.
type CatalogItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"`
	Available bool      `json:"available"`
	Photo     string    `json:"photo"`
	AdminID   uuid.UUID `json:"adminId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item returns the shared catalog fields.
func (c *CatalogItem) Item() *CatalogItem {
	return c
}

// Cream is an ice-cream flavour sold by amount.
type Cream struct {
	CatalogItem
	Amount float64 `json:"amount"`
}

// Topping is an extra sold by amount.
type Topping struct {
	CatalogItem
	Amount float64 `json:"amount"`
}

// Product is a base item (cup, cone, pot) sold by size.
type Product struct {
	CatalogItem
	Size        float64 `json:"size"`
	Description string  `json:"description"`
}

// Cataloged is implemented by every catalog entity.
type Cataloged interface {
	Item() *CatalogItem
}

// CatalogPatch carries the catalog fields that may change on update.
// Amount applies to creams and toppings, Size and Description to products.
type CatalogPatch struct {
	Name        *string
	Price       *float64
	Unit        *string
	Available   *bool
	Photo       *string
	Amount      *float64
	Size        *float64
	Description *string
}

// IsEmpty reports whether the patch carries no field.
func (p CatalogPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Unit == nil && p.Available == nil &&
		p.Photo == nil && p.Amount == nil && p.Size == nil && p.Description == nil
}
