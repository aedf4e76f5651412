package qrcode

import (
	"encoding/json"

	"scoop/config"
	"scoop/internal/domain/service"
	"scoop/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	pickupCodeType = "service-order-pickup"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupCodeData is the JSON content encoded in a pickup QR code.
type PickupCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewPickupCodeService builds the service from the qrcode config section.
func NewPickupCodeService(cfg *config.Config) service.PickupCodeService {
	size, level := defaultSize, ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupCode renders a PNG QR code for the order.
func (s *qrcodeService) GeneratePickupCode(orderID uuid.UUID) ([]byte, error) {
	content, err := json.Marshal(PickupCodeData{
		OrderID: orderID.String(),
		Type:    pickupCodeType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pickup code data")
	}

	qrCode, err := qrcode.New(string(content), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupCode reads the order id back from scanned QR content.
func (s *qrcodeService) ParsePickupCode(content string) (uuid.UUID, error) {
	var data PickupCodeData
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal pickup code data")
	}

	if data.Type != pickupCodeType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
