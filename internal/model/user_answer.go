package model

import "time"

// UserAnswer is one saved, graded answer. Records are append-only: the
// composite unique index backs the one-answer-per-(user, question) rule
// against concurrent saves that slip past the duplicate check.
type UserAnswer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	MockIDRef  uint      `json:"mock_id_ref" gorm:"column:mock_id_ref;not null;index"`
	Question   string    `json:"question" gorm:"type:text;not null;uniqueIndex:idx_user_answers_user_question"`
	CorrectAns string    `json:"correct_ans" gorm:"column:correct_ans;type:text;not null"`
	UserAns    string    `json:"user_ans" gorm:"column:user_ans;type:text;not null"`
	Feedback   string    `json:"feedback" gorm:"type:text"`
	Rating     int       `json:"rating"`
	UserID     string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_answers_user_question"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
