// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// DeliveryMode selects whether the delivery fee applies to a cart.
type DeliveryMode string

const (
	DeliveryModeDelivery DeliveryMode = "delivery"
	DeliveryModePickup   DeliveryMode = "pickup"
)

// IsValid reports whether m is one of the known delivery modes.
func (m DeliveryMode) IsValid() bool {
	return m == DeliveryModeDelivery || m == DeliveryModePickup
}

// SelectedAddOn is an add-on chosen for a line, priced at selection time.
type SelectedAddOn struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// LineItem is one configured product and its quantity in a cart.
//
// When submitted to a cart store it doubles as the line descriptor: LineID and
// UnitPrice must already be resolved and Quantity is the amount to add.
type LineItem struct {
	LineID             string          `json:"line_id"`             // Identity of the configuration, see cart.DeriveLineID.
	ProductID          string          `json:"product_id"`          // Catalog menu item ID; not unique within a cart.
	RestaurantID       string          `json:"restaurant_id"`       // Restaurant the product belongs to.
	Name               string          `json:"name"`                // Display name.
	VariationID        string          `json:"variation_id"`        // Selected variation.
	VariationName      string          `json:"variation_name"`      // Display name of the variation.
	AddOns             []SelectedAddOn `json:"add_ons"`             // Selected add-ons, sorted by ID.
	Note               string          `json:"note,omitempty"`      // Trimmed free-text instructions.
	UnitPrice          decimal.Decimal `json:"unit_price"`          // Variation price plus add-ons, frozen at creation.
	Quantity           int             `json:"quantity"`            // Always >= 1 while stored.
	ImageURL           string          `json:"image_url,omitempty"` // Display only.
	DescriptionSummary string          `json:"description_summary,omitempty"`
}

// LineTotal returns UnitPrice * Quantity at full precision.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Clone returns a deep copy so callers never share the add-on slice.
func (l LineItem) Clone() LineItem {
	if l.AddOns != nil {
		addOns := make([]SelectedAddOn, len(l.AddOns))
		copy(addOns, l.AddOns)
		l.AddOns = addOns
	}

	return l
}
