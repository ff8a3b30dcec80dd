package entity

import (
	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of decimal places amounts are displayed with.
const MinorUnitPlaces int32 = 2

// PricingPolicy carries the configuration constants used to price a cart.
type PricingPolicy struct {
	BaseDeliveryFee decimal.Decimal
	TaxRate         decimal.Decimal
}

// PricingResult is derived from a cart snapshot on every read and never stored.
// Values keep full precision; use Rounded for display.
type PricingResult struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Rounded returns a copy rounded half-up to the currency's minor unit.
func (r PricingResult) Rounded() PricingResult {
	return PricingResult{
		Subtotal:    r.Subtotal.Round(MinorUnitPlaces),
		DeliveryFee: r.DeliveryFee.Round(MinorUnitPlaces),
		Tax:         r.Tax.Round(MinorUnitPlaces),
		Total:       r.Total.Round(MinorUnitPlaces),
	}
}
