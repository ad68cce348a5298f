package models

import (
	"time"

	"gorm.io/datatypes"
)

// CompanyInfo is a singleton row. SingletonKey is always "company" and
// carries a unique index so PUT can upsert atomically with ON CONFLICT.
type CompanyInfo struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	SingletonKey   string         `gorm:"size:32;uniqueIndex;not null;default:company" json:"-"`
	About          string         `gorm:"type:text" json:"about"`
	Mission        string         `gorm:"type:text" json:"mission"`
	Vision         string         `gorm:"type:text" json:"vision"`
	Address        string         `gorm:"size:512" json:"address"`
	Phone          string         `gorm:"size:64" json:"phone"`
	Email          string         `gorm:"size:255" json:"email"`
	WorkingHours   string         `gorm:"size:255" json:"working_hours"`
	SocialLinks    datatypes.JSON `gorm:"type:json" json:"social_links"`
	Values         datatypes.JSON `gorm:"type:json" json:"values"`
	Certifications datatypes.JSON `gorm:"type:json" json:"certifications"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (CompanyInfo) TableName() string { return "company_info" }

// SingletonCompanyKey is the fixed conflict key for the singleton row.
const SingletonCompanyKey = "company"
