package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Restaurant is a partner kitchen whose menu can be ordered from.
type Restaurant struct {
	ID               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	Cuisine          string    `json:"cuisine"`
	Address          string    `json:"address"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	DeliveryRadiusKm float64   `json:"delivery_radius_km"` // Zero disables delivery.
	IsOpen           bool      `json:"is_open"`
	ImageURL         string    `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MenuItem is a product on a restaurant's menu.
type MenuItem struct {
	ID           uuid.UUID   `json:"id"`
	RestaurantID uuid.UUID   `json:"restaurant_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	ImageURL     string      `json:"image_url,omitempty"`
	IsAvailable  bool        `json:"is_available"`
	Variations   []Variation `json:"variations"`
	AddOns       []AddOn     `json:"add_ons"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Variation is a mutually exclusive size or style of a menu item.
type Variation struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// AddOn is an optional extra that can be combined with any variation.
type AddOn struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// FindVariation returns the variation with the given ID.
func (m *MenuItem) FindVariation(id uuid.UUID) (Variation, bool) {
	for _, v := range m.Variations {
		if v.ID == id {
			return v, true
		}
	}

	return Variation{}, false
}

// FindAddOn returns the add-on with the given ID.
func (m *MenuItem) FindAddOn(id uuid.UUID) (AddOn, bool) {
	for _, a := range m.AddOns {
		if a.ID == id {
			return a, true
		}
	}

	return AddOn{}, false
}

// Summary returns the description cut to at most n runes.
func (m *MenuItem) Summary(n int) string {
	runes := []rune(m.Description)
	if len(runes) <= n {
		return m.Description
	}

	return string(runes[:n]) + "…"
}
