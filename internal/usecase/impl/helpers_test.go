package impl

import (
	"io"
	"log/slog"

	"platter/config"
	"platter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Pricing: &config.PricingConfig{
			BaseDeliveryFee: decimal.NewFromInt(40),
			TaxRate:         decimal.RequireFromString("0.05"),
			Currency:        config.CurrencyConfig{Code: "INR", Symbol: "₹"},
		},
	}
}

func testMenuItem(restaurantID uuid.UUID) *entity.MenuItem {
	return &entity.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         "Paneer Tikka",
		Description:  "Char-grilled cottage cheese",
		IsAvailable:  true,
		Variations: []entity.Variation{
			{ID: uuid.New(), Name: "Half", Price: decimal.NewFromInt(180)},
			{ID: uuid.New(), Name: "Full", Price: decimal.NewFromInt(320)},
		},
		AddOns: []entity.AddOn{
			{ID: uuid.New(), Name: "Extra Cheese", Price: decimal.NewFromInt(40)},
			{ID: uuid.New(), Name: "Mint Chutney", Price: decimal.RequireFromString("15.50")},
		},
	}
}
