package models

import "time"

// Reference is a completed project shown on the references page.
type Reference struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Client      string    `gorm:"size:255" json:"client"`
	Location    string    `gorm:"size:255" json:"location"`
	Year        int       `json:"year"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Reference) TableName() string { return "references" }
