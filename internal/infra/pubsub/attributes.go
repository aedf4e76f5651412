package pubsub

import (
	"strconv"

	"scoop/internal/domain/service"
)

// orderAttributes are the message attributes subscribers filter on.
func orderAttributes(event *service.ServiceOrderEvent) map[string]string {
	order := event.Order
	attributes := map[string]string{
		"order_id":       order.ID.String(),
		"user_id":        order.UserID.String(),
		"payment_method": string(order.PaymentMethod),
		"total_price":    strconv.FormatFloat(order.TotalPrice, 'f', 2, 64),
	}
	if order.ClientID != nil {
		attributes["client_id"] = order.ClientID.String()
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
