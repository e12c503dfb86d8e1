package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string  `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Password  string  `json:"-" gorm:"not null"`
	FirstName string  `json:"first_name" gorm:"size:150"`
	LastName  string  `json:"last_name" gorm:"size:150"`
	Email     *string `json:"email" gorm:"size:254"`
	IsActive  bool    `json:"is_active" gorm:"default:true"`
}

// FullName renders "First Last", or "N/A" for a missing user.
func (u *User) FullName() string {
	if u == nil {
		return "N/A"
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AuthToken is the credential issued on register/login. One active token per user is reused
// until it expires or the user logs out.
type AuthToken struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SessionID      string    `json:"session_id" gorm:"size:64;uniqueIndex;not null"`
	Key            string    `json:"-" gorm:"type:text;not null"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}
