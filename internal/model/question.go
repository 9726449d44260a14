package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	InterviewID      uint           `json:"interview_id" gorm:"not null;index"`
	Prompt           string         `json:"prompt" gorm:"type:text;not null"`
	ReferenceAnswer  string         `json:"reference_answer" gorm:"type:text;not null"`
	OrderInInterview int            `json:"order_in_interview" gorm:"not null"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
