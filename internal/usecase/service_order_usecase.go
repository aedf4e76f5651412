package usecase

import (
	"context"

	"scoop/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrder is a service order as requested by a caller.
type PlaceOrder struct {
	ProductID     *uuid.UUID
	CreamIDs      []uuid.UUID
	ToppingIDs    []uuid.UUID
	Extras        []entity.OrderExtra
	PaymentMethod entity.PaymentMethod
	Notes         string
}

// OrderReceipt is returned once an order has been published.
type OrderReceipt struct {
	OrderID    uuid.UUID            `json:"orderId"`
	TotalPrice float64              `json:"totalPrice"`
	PickupCode string               `json:"pickupCode"` // base64 PNG
	Order      *entity.ServiceOrder `json:"order"`
}

// ServiceOrderUsecase prices and publishes service orders.
type ServiceOrderUsecase interface {
	Place(ctx context.Context, caller Caller, order PlaceOrder) (*OrderReceipt, error)
}
