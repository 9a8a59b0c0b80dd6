package model

import (
	"time"
)

// TagOverride is the database model for a level override (log.tag.<Tag>)
type TagOverride struct {
	Tag       string    `gorm:"primaryKey;type:varchar(23)"`
	Level     string    `gorm:"type:varchar(8);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the TagOverride model
func (TagOverride) TableName() string {
	return "log_tag_overrides"
}
