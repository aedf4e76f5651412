package service

import (
	"context"

	"scoop/internal/domain/entity"
)

// ServiceOrderEvent is the message published for every placed order.
type ServiceOrderEvent struct {
	RequestID string               `json:"request_id,omitempty"` // For distributed tracing
	Order     *entity.ServiceOrder `json:"order"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishServiceOrder publishes a placed order for downstream processing
	PublishServiceOrder(ctx context.Context, event *ServiceOrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
