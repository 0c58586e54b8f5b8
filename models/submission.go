package models

import (
	"time"
)

// Submission is a staged, unapproved activity. Tags and PhotoURLs arrive
// from the client flattened as comma-delimited strings and stay that way
// until approval reshapes them.
type Submission struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	SubmitterID  string    `gorm:"not null;index" json:"submitterId"`
	Submitter    User      `gorm:"foreignKey:SubmitterID" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Location     string    `json:"location"`
	ActivityType string    `gorm:"not null;type:varchar(20)" json:"activityType"` // "event", "attraction" or "custom"
	Tags         string    `json:"tags"`      // comma-delimited
	PhotoURLs    string    `json:"photoUrls"` // comma-delimited
	Date         string    `gorm:"type:varchar(10)" json:"date"`
	Time         string    `gorm:"type:varchar(20)" json:"time"`
	Latitude     float64   `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude    float64   `gorm:"type:decimal(11,8)" json:"longitude"`
	Organizer    string    `json:"organizer"`
	OpenTimes    string    `gorm:"type:varchar(255)" json:"openTimes"`
	WebsiteURL   string    `json:"websiteUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}
