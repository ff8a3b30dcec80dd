package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order after checkout.
type OrderStatus string

const (
	OrderStatusPlaced        OrderStatus = "placed"
	OrderStatusSentToKitchen OrderStatus = "sent_to_kitchen"
)

// Order is a checked-out cart. Amounts are stored rounded to the minor unit.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	SessionID       uuid.UUID       `json:"session_id"`
	RestaurantID    uuid.UUID       `json:"restaurant_id"`
	Status          OrderStatus     `json:"status"`
	DeliveryMode    DeliveryMode    `json:"delivery_mode"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	Note            string          `json:"note,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Lines           []OrderLine     `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderLine is a cart line frozen into an order.
type OrderLine struct {
	ID            uuid.UUID       `json:"id"`
	LineID        string          `json:"line_id"`
	MenuItemID    string          `json:"menu_item_id"`
	Name          string          `json:"name"`
	VariationName string          `json:"variation_name"`
	AddOnNames    []string        `json:"add_on_names"`
	Note          string          `json:"note,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	LineTotal     decimal.Decimal `json:"line_total"`
}
