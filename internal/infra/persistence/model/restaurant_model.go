// Package model contains the GORM table structs of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Slug             string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Cuisine          string    `gorm:"type:varchar(120)"`
	Address          string    `gorm:"type:text"`
	Latitude         float64   `gorm:"not null;default:0"`
	Longitude        float64   `gorm:"not null;default:0"`
	DeliveryRadiusKm float64   `gorm:"not null;default:0"`
	IsOpen           bool      `gorm:"not null"`
	ImageURL         string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// BeforeCreate assigns an ID when the caller did not.
func (m *RestaurantModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
