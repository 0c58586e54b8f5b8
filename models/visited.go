package models

import (
	"time"
)

type Visited struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `gorm:"not null;uniqueIndex:idx_visiteds_user_activity"`
	ActivityID string    `gorm:"not null;uniqueIndex:idx_visiteds_user_activity"`
	VisitDate  string    `gorm:"type:varchar(30)"` // ISO-8601 date supplied by the client
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	User     User     `gorm:"foreignKey:UserID"`
	Activity Activity `gorm:"foreignKey:ActivityID"`
}
