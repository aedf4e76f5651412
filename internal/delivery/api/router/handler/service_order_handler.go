package handler

import (
	"scoop/internal/delivery/api/response"
	"scoop/internal/domain/entity"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ServiceOrderHandler serves /service-orders.
type ServiceOrderHandler struct {
	orderUC usecase.ServiceOrderUsecase
}

// NewServiceOrderHandler is the constructor for ServiceOrderHandler.
func NewServiceOrderHandler(orderUC usecase.ServiceOrderUsecase) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderUC: orderUC}
}

// ServiceOrderRequest represents the request body for placing an order.
type ServiceOrderRequest struct {
	ProductID     string         `json:"productId" validate:"omitempty,uuid"`
	Creams        []string       `json:"creams" validate:"dive,uuid"`
	Toppings      []string       `json:"toppings" validate:"dive,uuid"`
	Extras        []ExtraRequest `json:"extras" validate:"dive"`
	PaymentMethod string         `json:"paymentMethod" validate:"required,oneof=CASH CREDIT_CARD DEBIT_CARD PIX"`
	Notes         string         `json:"notes"`
}

// ExtraRequest is one free-form priced addition.
type ExtraRequest struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

func (r ServiceOrderRequest) toPlaceOrder() usecase.PlaceOrder {
	order := usecase.PlaceOrder{
		CreamIDs:      parseIDs(r.Creams),
		ToppingIDs:    parseIDs(r.Toppings),
		PaymentMethod: entity.PaymentMethod(r.PaymentMethod),
		Notes:         r.Notes,
	}
	if r.ProductID != "" {
		id := uuid.MustParse(r.ProductID)
		order.ProductID = &id
	}
	for _, extra := range r.Extras {
		order.Extras = append(order.Extras, entity.OrderExtra{Name: extra.Name, Price: *extra.Price})
	}

	return order
}

// parseIDs converts ids already checked by the validator.
func parseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		ids = append(ids, uuid.MustParse(s))
	}

	return ids
}

// Place handles POST /service-orders.
func (h *ServiceOrderHandler) Place(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req ServiceOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	receipt, err := h.orderUC.Place(c.Request().Context(), caller, req.toPlaceOrder())
	if err != nil {
		return err
	}

	return response.Message(c, "Service order placed successfully", receipt)
}
