package service

import (
	"context"
)

// OrderPlacedLine is the kitchen-facing view of an order line.
type OrderPlacedLine struct {
	Name          string   `json:"name"`
	VariationName string   `json:"variation_name"`
	AddOnNames    []string `json:"add_on_names,omitempty"`
	Note          string   `json:"note,omitempty"`
	Quantity      int      `json:"quantity"`
}

// OrderPlacedEvent represents an order to be forwarded to the restaurant by the kitchen worker
type OrderPlacedEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	OrderID      string            `json:"order_id"`
	RestaurantID string            `json:"restaurant_id"`
	DeliveryMode string            `json:"delivery_mode"`
	CustomerName string            `json:"customer_name"`
	Total        string            `json:"total"` // Rounded, formatted without currency symbol
	Lines        []OrderPlacedLine `json:"lines"`
	PlacedAt     string            `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
