package models

import "time"

// Contact message lifecycle.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"

	ContactUrgencyNormal = "normal"
	ContactUrgencyUrgent = "urgent"
)

// ContactMessage is a contact-form submission. Deleted physically.
type ContactMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Phone      string    `gorm:"size:64" json:"phone"`
	Subject    string    `gorm:"size:255" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Urgency    string    `gorm:"size:16;default:normal;index" json:"urgency"`
	Status     string    `gorm:"size:16;default:new;index" json:"status"`
	SourceIP   string    `gorm:"size:64" json:"source_ip"`
	UserAgent  string    `gorm:"size:512" json:"user_agent"`
	AdminNotes string    `gorm:"type:text" json:"admin_notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
