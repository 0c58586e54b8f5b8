package models

import (
	"time"
)

// Rating is upserted on (UserID, ActivityID) and never deleted. The
// activity's AvgRating is recomputed from the full row set after every
// upsert, in the same transaction.
type Rating struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `gorm:"not null;uniqueIndex:idx_ratings_user_activity"`
	ActivityID string    `gorm:"not null;uniqueIndex:idx_ratings_user_activity"`
	Rating     float64   `gorm:"not null;type:decimal(3,2)"`
	DateRated  time.Time `gorm:"not null"`

	User     User     `gorm:"foreignKey:UserID"`
	Activity Activity `gorm:"foreignKey:ActivityID"`
}
