package service

import (
	"github.com/google/uuid"
)

// PickupCodeService renders and reads the QR code handed to a customer
// when an order is placed.
type PickupCodeService interface {
	// GeneratePickupCode returns a PNG QR code encoding the order id.
	GeneratePickupCode(orderID uuid.UUID) ([]byte, error)

	// ParsePickupCode extracts the order id from scanned QR content.
	ParsePickupCode(content string) (uuid.UUID, error)
}
