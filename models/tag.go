package models

type Tag struct {
	ID   string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name string `gorm:"unique;not null;type:varchar(50)" json:"name"`
}

// ActivityTag links an activity to a tag. One row per (activity, tag) pair.
type ActivityTag struct {
	ActivityID string `gorm:"primaryKey;type:varchar(36)" json:"activityId"`
	TagID      string `gorm:"primaryKey;type:varchar(36)" json:"tagId"`

	Activity Activity `gorm:"foreignKey:ActivityID" json:"-"`
	Tag      Tag      `gorm:"foreignKey:TagID" json:"-"`
}
