package models

import "gorm.io/gorm"

// BlogPost represents a published article. Date holds the display string
// shown on the page, formatted once at creation time; it is not used for
// ordering.
type BlogPost struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `gorm:"uniqueIndex;type:varchar(250)" validate:"required,max=250"`
	Subtitle   string `gorm:"type:varchar(250)" validate:"required,max=250"`
	Date       string `gorm:"type:varchar(250)"`
	Body       string `gorm:"type:text" validate:"required"`
	ImgURL     string `gorm:"type:varchar(250)" validate:"required,url"`
	AuthorID   string `gorm:"type:varchar(36);index"`
	Author     *User  `gorm:"foreignKey:AuthorID"` // loaded via explicit Preload only
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
