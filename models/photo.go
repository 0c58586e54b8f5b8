package models

import "time"

type ActivityPhoto struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ActivityID string    `gorm:"not null;index" json:"activityId"`
	Activity   Activity  `gorm:"foreignKey:ActivityID" json:"-"`
	PhotoURL   string    `gorm:"not null" json:"photoUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}
