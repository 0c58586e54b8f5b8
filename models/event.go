package models

import "time"

type Event struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ActivityID string    `gorm:"not null;uniqueIndex" json:"activityId"`
	Activity   Activity  `gorm:"foreignKey:ActivityID" json:"-"`
	Date       string    `gorm:"type:varchar(10)" json:"date"` // "2006-01-02"
	Time       string    `gorm:"type:varchar(20)" json:"time"`
	Latitude   float64   `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude  float64   `gorm:"type:decimal(11,8)" json:"longitude"`
	Organizer  string    `json:"organizer"`
	CreatedAt  time.Time `json:"createdAt"`
}
