package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	SessionID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
	DeliveryMode    string    `gorm:"type:varchar(16);not null"`
	CustomerName    string    `gorm:"type:varchar(255);not null"`
	CustomerPhone   string    `gorm:"type:varchar(32);not null"`
	DeliveryAddress string    `gorm:"type:text"`
	Latitude        *float64
	Longitude       *float64
	Note            string           `gorm:"type:text"`
	Subtotal        decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	DeliveryFee     decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Tax             decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Total           decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Lines           []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table.
type OrderLineModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position      int             `gorm:"not null"`
	LineID        string          `gorm:"type:varchar(64);not null"`
	MenuItemID    string          `gorm:"type:varchar(64);not null"`
	Name          string          `gorm:"type:varchar(255);not null"`
	VariationName string          `gorm:"type:varchar(120)"`
	AddOnNames    []string        `gorm:"serializer:json"`
	Note          string          `gorm:"type:text"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity      int             `gorm:"not null"`
	LineTotal     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&RestaurantModel{},
		&MenuItemModel{},
		&MenuVariationModel{},
		&MenuAddOnModel{},
		&OrderModel{},
		&OrderLineModel{},
	}
}
