package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how a service order is paid.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentPix        PaymentMethod = "PIX"
)

// IsValid checks if the PaymentMethod is a valid value.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix:
		return true
	default:
		return false
	}
}

// OrderLine is one priced catalog item inside a service order.
type OrderLine struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// OrderExtra is a free-form priced addition such as a candle or a box.
type OrderExtra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceOrder is a purchase event. It is published to the broker and
// never persisted by this service.
type ServiceOrder struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"userId"`
	ClientID      *uuid.UUID    `json:"clientId,omitempty"`
	Product       *OrderLine    `json:"product,omitempty"`
	Creams        []OrderLine   `json:"creams"`
	Toppings      []OrderLine   `json:"toppings"`
	Extras        []OrderExtra  `json:"extras"`
	TotalPrice    float64       `json:"totalPrice"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Total sums the product, cream, topping and extra prices.
func (o *ServiceOrder) Total() float64 {
	var total float64
	if o.Product != nil {
		total += o.Product.Price
	}
	for _, line := range o.Creams {
		total += line.Price
	}
	for _, line := range o.Toppings {
		total += line.Price
	}
	for _, extra := range o.Extras {
		total += extra.Price
	}

	return total
}
