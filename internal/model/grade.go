package model

// GradeResult is the outcome of grading one answer against its reference
// answer. Rating is an integer score out of 10.
type GradeResult struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// AnswerAttempt is one user's finalized answer to one question, pending
// grading and persistence. It is built when evaluation is requested and
// never stored directly; a saved attempt becomes a UserAnswer.
type AnswerAttempt struct {
	QuestionPrompt  string
	ReferenceAnswer string
	UserText        string
	UserID          string
	InterviewID     uint
}

// NoticeKind classifies a user-facing notice emitted by the recording and
// save flows. The transport (toast, log line) is up to the caller.
type NoticeKind string

const (
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
)

// Notice is a side-channel status event: validation failures, duplicate-save
// notices, save success/failure.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}
