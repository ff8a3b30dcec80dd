// Package qrcode renders the QR codes customers show when collecting pickup orders.
package qrcode

import (
	"encoding/json"
	"fmt"

	"platter/config"
	"platter/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	pickupType  = "pickup"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupData is the payload encoded in a pickup QR code.
type PickupData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// New creates the QR code service from config.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

func pickupPayload(orderID uuid.UUID) (string, error) {
	data, err := json.Marshal(PickupData{
		OrderID: orderID.String(),
		Type:    pickupType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return string(data), nil
}

// GeneratePickupQR renders the order's pickup code as PNG.
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID) ([]byte, error) {
	payload, err := pickupPayload(orderID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR parses scanned QR code data and returns the order ID
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	var data PickupData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pickupType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}
