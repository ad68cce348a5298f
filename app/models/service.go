package models

import (
	"time"

	"gorm.io/datatypes"
)

// Service is an offered service (installation, maintenance, repair).
// Titles are Turkish, so the slug uses locale folding.
type Service struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	Slug             string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description      string         `gorm:"type:text" json:"description"`
	ShortDescription string         `gorm:"size:512" json:"short_description"`
	Features         datatypes.JSON `gorm:"type:json" json:"features"`
	Benefits         datatypes.JSON `gorm:"type:json" json:"benefits"`
	PriceRange       string         `gorm:"size:128" json:"price_range"`
	Duration         string         `gorm:"size:128" json:"duration"`
	Warranty         string         `gorm:"size:255" json:"warranty"`
	IsFeatured       bool           `gorm:"default:false;index" json:"is_featured"`
	SortOrder        int            `gorm:"default:0;index" json:"sort_order"`
	IsActive         bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (Service) TableName() string { return "services" }
