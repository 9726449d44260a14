package dto

// QuestionCreateDTO is used within InterviewCreateDTO for admin interview creation.
type QuestionCreateDTO struct {
	Prompt           string `json:"prompt" binding:"required"`
	ReferenceAnswer  string `json:"reference_answer" binding:"required"`
	OrderInInterview int    `json:"order_in_interview" binding:"required,min=1"`
}

// InterviewCreateDTO is for admin to create a new mock interview with its questions.
type InterviewCreateDTO struct {
	Position    string              `json:"position" binding:"required"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// StartRecordingDTO opens a recording session for one question of an interview.
type StartRecordingDTO struct {
	UserID      string `json:"user_id" binding:"required"`
	InterviewID uint   `json:"interview_id" binding:"required"`
	QuestionID  uint   `json:"question_id" binding:"required"`
}

// FragmentDTO is one recognized-speech fragment pushed by the speech source.
// Final marks a settled fragment; anything else is an interim preview.
type FragmentDTO struct {
	Text  string `json:"text" binding:"required"`
	Final bool   `json:"final"`
}
