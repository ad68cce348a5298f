package models

import "time"

// Testimonial is a customer review. Publicly submitted rows start
// unapproved and stay hidden until an admin approves them.
type Testimonial struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Company    string    `gorm:"size:255" json:"company"`
	Position   string    `gorm:"size:255" json:"position"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	Rating     int       `gorm:"default:5" json:"rating"`
	Category   string    `gorm:"size:128;index" json:"category"`
	IsActive   bool      `gorm:"default:true;index" json:"is_active"`
	IsFeatured bool      `gorm:"default:false;index" json:"is_featured"`
	IsApproved bool      `gorm:"default:false;index" json:"is_approved"`
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonials" }
