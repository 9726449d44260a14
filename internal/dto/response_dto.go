package dto

import "time"

// QuestionResponseDTO is used for displaying question details to users.
type QuestionResponseDTO struct {
	ID               uint   `json:"id"`
	InterviewID      uint   `json:"interview_id"`
	Prompt           string `json:"prompt"`
	ReferenceAnswer  string `json:"reference_answer"`
	OrderInInterview int    `json:"order_in_interview"`
}

// InterviewResponseDTO is used for displaying full interview details to users.
type InterviewResponseDTO struct {
	ID          uint                  `json:"id"`
	Position    string                `json:"position"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// InterviewSummaryDTO is used for listing interviews available to users.
type InterviewSummaryDTO struct {
	ID            uint      `json:"id"`
	Position      string    `json:"position"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// GradeResultDTO carries the AI grade for a finalized answer.
type GradeResultDTO struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// NoticeDTO is one user-facing status event recorded on a session.
type NoticeDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RecordingSessionDTO is a snapshot of one recording session's state.
type RecordingSessionDTO struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	InterviewID    uint            `json:"interview_id"`
	QuestionID     uint            `json:"question_id"`
	QuestionPrompt string          `json:"question_prompt"`
	State          string          `json:"state"`
	Answer         string          `json:"answer"`
	Interim        string          `json:"interim,omitempty"`
	Grade          *GradeResultDTO `json:"grade,omitempty"`
	Notices        []NoticeDTO     `json:"notices,omitempty"`
}

// SaveResponseDTO reports the outcome of a save-intent command.
type SaveResponseDTO struct {
	Status  string              `json:"status"` // "saved", "rejected", "failed"
	Reason  string              `json:"reason,omitempty"`
	Session RecordingSessionDTO `json:"session"`
}

// UserAnswerDTO is one saved, graded answer.
type UserAnswerDTO struct {
	ID         uint      `json:"id"`
	MockIDRef  uint      `json:"mock_id_ref"`
	Question   string    `json:"question"`
	CorrectAns string    `json:"correct_ans"`
	UserAns    string    `json:"user_ans"`
	Feedback   string    `json:"feedback"`
	Rating     int       `json:"rating"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
