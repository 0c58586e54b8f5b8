package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ActivityTypeEvent      = "event"
	ActivityTypeAttraction = "attraction"
	ActivityTypeCustom     = "custom" // submission-only, never published
)

type Activity struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Location     string         `json:"location" gorm:"not null"`
	ActivityType string         `json:"activityType" gorm:"not null;type:varchar(20)"` // "event" or "attraction"
	AvgRating    float64        `json:"avgRating" gorm:"not null;default:0;type:decimal(3,2)"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}
