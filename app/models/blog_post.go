package models

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content     string         `gorm:"type:text" json:"content"`
	Excerpt     string         `gorm:"size:512" json:"excerpt"`
	Tags        datatypes.JSON `gorm:"type:json" json:"tags"`
	Author      string         `gorm:"size:255" json:"author"`
	CoverURL    string         `gorm:"size:512" json:"cover_url"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	PublishedAt *time.Time     `json:"published_at"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }
