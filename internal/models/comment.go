package models

import "gorm.io/gorm"

// Comment is a reader comment on a blog post. Comments are immutable after
// creation and are removed only when their parent post is deleted.
type Comment struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Text       string `gorm:"type:text" validate:"required"`
	UserID     string `gorm:"type:varchar(36);index"`
	BlogPostID string `gorm:"type:varchar(36);index"`
	Author     *User  `gorm:"foreignKey:UserID"` // loaded via explicit Preload only
	gorm.Model
}
