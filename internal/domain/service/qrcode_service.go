package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a PNG QR code a customer shows when collecting an order
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the order ID
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
