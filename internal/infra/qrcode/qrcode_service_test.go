package qrcode

import (
	"testing"

	"platter/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"Small low", 128, "L"},
		{"Medium default", 256, "M"},
		{"Large high", 512, "Q"},
		{"Highest", 256, "H"},
		{"Unknown level falls back", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.level)

			png, err := svc.GeneratePickupQR(uuid.New())
			require.NoError(t, err)
			require.Greater(t, len(png), len(pngMagic))
			assert.Equal(t, pngMagic, png[:4])
		})
	}
}

func TestNew_UsesConfigOrDefaults(t *testing.T) {
	assert.NotNil(t, New(&config.Config{}))
	assert.NotNil(t, New(&config.Config{QRCode: &config.QRCodeConfig{Size: 200, ErrorCorrectionLevel: "H"}}))
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := pickupPayload(orderID)
	require.NoError(t, err)

	got, err := svc.ParsePickupQR(payload)
	require.NoError(t, err)
	assert.Equal(t, orderID, got)
}

func TestQRCodeService_ParsePickupQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", "not-json"},
		{"Wrong type", `{"order_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"Bad UUID", `{"order_id":"nope","type":"pickup"}`},
		{"Empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePickupQR(tt.data)
			assert.Error(t, err)
		})
	}
}
