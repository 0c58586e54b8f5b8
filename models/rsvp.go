package models

import (
	"time"
)

type RSVP struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `gorm:"not null;uniqueIndex:idx_rsvps_user_activity"`
	ActivityID string    `gorm:"not null;uniqueIndex:idx_rsvps_user_activity"`
	RSVPDate   string    `gorm:"type:varchar(30)"` // ISO-8601 date supplied by the client
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	User     User     `gorm:"foreignKey:UserID"`
	Activity Activity `gorm:"foreignKey:ActivityID"`
}
