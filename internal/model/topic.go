package model

import "time"

// Topic groups recipes. Recipes reference a topic but never own it.
type Topic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name" validate:"required"`
}

func (Topic) TableName() string {
	return "topics"
}

func (t *Topic) Validate() error {
	return validateStruct(t)
}
