package models

import "time"

type Attraction struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ActivityID string    `gorm:"not null;uniqueIndex" json:"activityId"`
	Activity   Activity  `gorm:"foreignKey:ActivityID" json:"-"`
	OpenTimes  string    `gorm:"type:varchar(255)" json:"openTimes"`
	WebsiteURL string    `json:"websiteUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}
