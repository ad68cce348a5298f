package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalogue item (boilers, AC units, heat pumps...).
type Product struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Slug           string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description    string         `gorm:"type:text" json:"description"`
	Brand          string         `gorm:"size:128" json:"brand"`
	CategoryID     *uint          `gorm:"index" json:"category_id"`
	Category       *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Features       datatypes.JSON `gorm:"type:json" json:"features"`
	Specifications datatypes.JSON `gorm:"type:json" json:"specifications"`
	Price          float64        `json:"price"`
	InStock        bool           `gorm:"default:true" json:"in_stock"`
	ImageURL       string         `gorm:"size:512" json:"image_url"`
	SortOrder      int            `gorm:"default:0;index" json:"sort_order"`
	IsActive       bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
