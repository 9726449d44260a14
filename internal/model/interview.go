package model

import (
	"time"

	"gorm.io/gorm"
)

type Interview struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Position    string         `json:"position" gorm:"not null"` // "Senior Golang Engineer"
	Description string         `json:"description,omitempty"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:InterviewID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
