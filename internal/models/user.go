package models

import (
	"crypto/md5"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// User represents a registered author. The first user ever created gets the
// Admin flag and may edit or delete any post.
type User struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)"` // bcrypt hash, never plaintext
	Name       string `gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Admin      bool   `gorm:"not null;default:false"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// GravatarURL returns the gravatar image URL for the user's email address.
func (u *User) GravatarURL(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=retro&r=g", sum, size)
}
