package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AccountTypeUser      = "user"
	AccountTypeAdmin     = "admin"
	AccountTypeOrganizer = "organizer"
	AccountTypeGuest     = "guest"

	AccountStatusActive     = "active"
	AccountStatusRestricted = "restricted"
)

type User struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	Email         *string        `gorm:"uniqueIndex" json:"email"`
	ProfilePicURL string         `json:"profile_pic_url"`
	AccountType   string         `gorm:"not null;default:'user';type:varchar(20)" json:"account_type"`
	AccountStatus string         `gorm:"not null;default:'active';type:varchar(20)" json:"account_status"`
	AuthProvider  string         `gorm:"not null;type:varchar(20)" json:"auth_provider"` // "google" or "guest"
	GoogleID      *string        `gorm:"uniqueIndex" json:"-"`
}
