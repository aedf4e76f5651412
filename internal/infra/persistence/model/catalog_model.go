package model

import (
	"time"

	"github.com/google/uuid"
)

// CatalogColumns are embedded by every catalog table.
type CatalogColumns struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Price     float64   `gorm:"type:numeric(10,2);not null"`
	Unit      string    `gorm:"type:varchar(20);not null"`
	Available bool      `gorm:"not null;default:true;index"`
	Photo     string    `gorm:"type:text"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreamModel mirrors the 'creams' table.
type CreamModel struct {
	CatalogColumns `gorm:"embedded"`
	Amount         float64 `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CreamModel) TableName() string {
	return "creams"
}

// ToppingModel mirrors the 'toppings' table.
type ToppingModel struct {
	CatalogColumns `gorm:"embedded"`
	Amount         float64 `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ToppingModel) TableName() string {
	return "toppings"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	CatalogColumns `gorm:"embedded"`
	Size           float64 `gorm:"type:numeric(10,2);not null"`
	Description    string  `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&RoleModel{},
		&AddressModel{},
		&UserModel{},
		&AdminModel{},
		&ClientModel{},
		&MemberModel{},
		&CreamModel{},
		&ToppingModel{},
		&ProductModel{},
	}
}
