package models

import (
	"time"
)

// Favorite marks an activity as favorited by a user. The composite unique
// index guarantees at most one row per (user, activity) pair.
type Favorite struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `gorm:"not null;uniqueIndex:idx_favorites_user_activity"`
	ActivityID string    `gorm:"not null;uniqueIndex:idx_favorites_user_activity"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	User     User     `gorm:"foreignKey:UserID"`
	Activity Activity `gorm:"foreignKey:ActivityID"`
}
