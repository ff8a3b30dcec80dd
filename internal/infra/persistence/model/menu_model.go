package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItemModel is the GORM-specific struct for the 'menu_items' table.
type MenuItemModel struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key"`
	RestaurantID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name         string               `gorm:"type:varchar(255);not null"`
	Description  string               `gorm:"type:text"`
	Category     string               `gorm:"type:varchar(120);index"`
	ImageURL     string               `gorm:"type:text"`
	IsAvailable  bool                 `gorm:"not null"`
	Variations   []MenuVariationModel `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	AddOns       []MenuAddOnModel     `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// BeforeCreate assigns an ID when the caller did not.
func (m *MenuItemModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// MenuVariationModel is the GORM-specific struct for the 'menu_variations' table.
type MenuVariationModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(120);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position   int             `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (MenuVariationModel) TableName() string {
	return "menu_variations"
}

// BeforeCreate assigns an ID when the caller did not.
func (m *MenuVariationModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// MenuAddOnModel is the GORM-specific struct for the 'menu_add_ons' table.
type MenuAddOnModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(120);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position   int             `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (MenuAddOnModel) TableName() string {
	return "menu_add_ons"
}

// BeforeCreate assigns an ID when the caller did not.
func (m *MenuAddOnModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
