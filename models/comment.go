package models

import (
	"time"
)

type Comment struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID     string `gorm:"not null;index" json:"userId"`
	ActivityID string `gorm:"not null;index" json:"activityId"`
	Text       string `gorm:"not null;type:text" json:"text"`
	PhotoURL   string `json:"photoUrl"`
	CreatedAt  time.Time `json:"createdAt"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Activity Activity `gorm:"foreignKey:ActivityID" json:"-"`
}
