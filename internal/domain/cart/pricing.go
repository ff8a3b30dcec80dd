package cart

import (
	"platter/internal/domain/entity"
	"platter/internal/errors"

	"github.com/shopspring/decimal"
)

// ComputeTotals derives subtotal, delivery fee, tax and total from lines.
//
// Amounts keep full precision; rounding to the minor unit is left to display
// (entity.PricingResult.Rounded). The delivery fee applies only in delivery
// mode. Negative inputs are rejected with ErrNegativeAmount instead of being
// clamped.
func ComputeTotals(lines []entity.LineItem, mode entity.DeliveryMode, policy entity.PricingPolicy) (entity.PricingResult, error) {
	if policy.BaseDeliveryFee.IsNegative() {
		return entity.PricingResult{}, errors.Wrapf(ErrNegativeAmount, "base delivery fee %s", policy.BaseDeliveryFee)
	}
	if policy.TaxRate.IsNegative() {
		return entity.PricingResult{}, errors.Wrapf(ErrNegativeAmount, "tax rate %s", policy.TaxRate)
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.UnitPrice.IsNegative() || line.Quantity < 0 {
			return entity.PricingResult{}, errors.Wrapf(ErrNegativeAmount,
				"line %s: unit price %s, quantity %d", line.LineID, line.UnitPrice, line.Quantity)
		}
		subtotal = subtotal.Add(line.LineTotal())
	}

	deliveryFee := decimal.Zero
	if mode == entity.DeliveryModeDelivery {
		deliveryFee = policy.BaseDeliveryFee
	}

	tax := subtotal.Mul(policy.TaxRate)

	return entity.PricingResult{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       subtotal.Add(deliveryFee).Add(tax),
	}, nil
}
