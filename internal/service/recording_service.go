package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/lshigami/Lorikeets/internal/transcript"
	"github.com/rs/zerolog/log"
)

// SessionState names one state of a recording session. Transitions:
//
//	Idle        -> Recording    start / restart
//	Recording   -> Recording    fragment arrives
//	Recording   -> Idle         stop with answer shorter than MinAnswerLength
//	Recording   -> Evaluating   stop with the length precondition met
//	Evaluating  -> Evaluated    grade arrives (win or fallback)
//	Evaluated   -> Recording    record-again (discards grade and transcript)
//	Evaluated   -> SavePending  save-intent (grade must be present)
//	SavePending -> Saved        gate accepted the write
//	SavePending -> Evaluated    gate rejected or failed; grade retained
type SessionState string

const (
	StateIdle        SessionState = "idle"
	StateRecording   SessionState = "recording"
	StateEvaluating  SessionState = "evaluating"
	StateEvaluated   SessionState = "evaluated"
	StateSavePending SessionState = "save_pending"
	StateSaved       SessionState = "saved"
)

// MinAnswerLength is the minimum trimmed answer length eligible for
// evaluation. The sole precondition; there is no maximum or content check.
const MinAnswerLength = 30

// maxSessionNotices bounds the per-session notice history.
const maxSessionNotices = 20

var (
	ErrSessionNotFound = errors.New("recording session not found")
	ErrNotRecording    = errors.New("session is not recording")
	ErrSaveInFlight    = errors.New("a save is already in progress for this session")
)

// recordingSession owns the transcript buffer and grade for one user
// answering one question. Nothing else mutates them.
type recordingSession struct {
	id          string
	userID      string
	interviewID uint
	question    model.Question

	mu    sync.Mutex
	state SessionState
	acc   *transcript.Accumulator
	grade *model.GradeResult

	// generation tags each evaluation with the recording it was issued
	// for, so a result arriving after a restart is discarded instead of
	// being applied to the new recording.
	generation int

	notices []model.Notice
}

// RecordingService drives recording sessions: transcript capture,
// evaluation triggering, re-recording, and save confirmation.
type RecordingService interface {
	StartSession(req dto.StartRecordingDTO) (*dto.RecordingSessionDTO, error)
	PushFragment(sessionID string, fragment transcript.Fragment) (*dto.RecordingSessionDTO, error)
	StopRecording(sessionID string) (*dto.RecordingSessionDTO, error)
	RestartRecording(sessionID string) (*dto.RecordingSessionDTO, error)
	SaveAnswer(sessionID string) (*dto.SaveResponseDTO, error)
	GetSession(sessionID string) (*dto.RecordingSessionDTO, error)
}

type recordingService struct {
	mu       sync.RWMutex
	sessions map[string]*recordingSession

	questionRepo repository.QuestionRepository
	grader       GraderService
	answers      AnswerService
}

func NewRecordingService(questionRepo repository.QuestionRepository, grader GraderService, answers AnswerService) RecordingService {
	return &recordingService{
		sessions:     make(map[string]*recordingSession),
		questionRepo: questionRepo,
		grader:       grader,
		answers:      answers,
	}
}

// StartSession opens a fresh session for one question and begins recording.
func (s *recordingService) StartSession(req dto.StartRecordingDTO) (*dto.RecordingSessionDTO, error) {
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("StartSession: question not found")
		return nil, fmt.Errorf("question not found with ID %d: %w", req.QuestionID, err)
	}
	if question.InterviewID != req.InterviewID {
		return nil, fmt.Errorf("question %d does not belong to interview %d", req.QuestionID, req.InterviewID)
	}

	sess := &recordingSession{
		id:          uuid.NewString(),
		userID:      req.UserID,
		interviewID: req.InterviewID,
		question:    *question,
		state:       StateRecording,
		acc:         transcript.NewAccumulator(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Info().Str("sessionID", sess.id).Str("userID", req.UserID).Uint("questionID", question.ID).Msg("Recording session started")

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshotLocked(), nil
}

func (s *recordingService) findSession(sessionID string) (*recordingSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// PushFragment applies one fragment to the transcript. Fragments are only
// accepted while the session is recording.
func (s *recordingService) PushFragment(sessionID string, fragment transcript.Fragment) (*dto.RecordingSessionDTO, error) {
	sess, err := s.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StateRecording {
		return nil, ErrNotRecording
	}
	sess.acc.Add(fragment)
	return sess.snapshotLocked(), nil
}

// StopRecording finalizes the transcript. Too-short answers abort to Idle
// with a validation notice and never reach the AI; otherwise evaluation is
// launched asynchronously and the session moves to Evaluating.
func (s *recordingService) StopRecording(sessionID string) (*dto.RecordingSessionDTO, error) {
	sess, err := s.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StateRecording {
		return nil, ErrNotRecording
	}

	answer := sess.acc.Answer()
	if len(strings.TrimSpace(answer)) < MinAnswerLength {
		sess.state = StateIdle
		sess.addNoticeLocked(model.NoticeError, "Your answer should be more than 30 characters")
		return sess.snapshotLocked(), nil
	}

	sess.state = StateEvaluating
	go s.evaluate(sess, sess.generation, answer)
	return sess.snapshotLocked(), nil
}

// evaluate runs the grading call off the session lock and applies the
// result only if the recording it was issued for is still current.
func (s *recordingService) evaluate(sess *recordingSession, generation int, answer string) {
	grade, gradeErr := s.grader.GradeAnswer(context.Background(), sess.question.Prompt, sess.question.ReferenceAnswer, answer)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.generation != generation {
		log.Info().Str("sessionID", sess.id).Int("generation", generation).Msg("Discarding stale evaluation result for a superseded recording")
		return
	}

	sess.grade = &grade
	sess.state = StateEvaluated
	if gradeErr != nil {
		sess.addNoticeLocked(model.NoticeError, "An error occurred while generating feedback.")
	}
}

// RestartRecording discards the transcript and any grade and starts a fresh
// capture. An evaluation still in flight keeps running but its result is
// dropped on arrival.
func (s *recordingService) RestartRecording(sessionID string) (*dto.RecordingSessionDTO, error) {
	sess, err := s.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state == StateSavePending {
		return nil, ErrSaveInFlight
	}

	sess.generation++
	sess.acc.Reset()
	sess.grade = nil
	sess.state = StateRecording
	log.Info().Str("sessionID", sess.id).Msg("Recording restarted, previous transcript and grade discarded")
	return sess.snapshotLocked(), nil
}

// SaveAnswer hands the graded attempt to the persistence gate. The session
// suspends in SavePending until the gate resolves; rejection and failure
// both return to Evaluated so the grade is retained for another attempt.
func (s *recordingService) SaveAnswer(sessionID string) (*dto.SaveResponseDTO, error) {
	sess, err := s.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state == StateSavePending {
		return nil, ErrSaveInFlight
	}

	attempt := model.AnswerAttempt{
		QuestionPrompt:  sess.question.Prompt,
		ReferenceAnswer: sess.question.ReferenceAnswer,
		UserText:        sess.acc.Answer(),
		UserID:          sess.userID,
		InterviewID:     sess.interviewID,
	}

	var grade *model.GradeResult
	if sess.state == StateEvaluated {
		grade = sess.grade
	}

	prior := sess.state
	sess.state = StateSavePending
	result := s.answers.SaveAttempt(attempt, grade)

	switch result.Status {
	case SaveStatusSaved:
		sess.addNoticeLocked(model.NoticeSuccess, "Your answer has been saved.")
		sess.acc.Reset()
		sess.state = StateSaved
	case SaveStatusRejected:
		if result.Reason == "no grade available" {
			sess.addNoticeLocked(model.NoticeError, "No AI result to save.")
			sess.state = prior
		} else {
			sess.addNoticeLocked(model.NoticeInfo, "You have already answered this question.")
			sess.state = StateEvaluated
		}
	case SaveStatusFailed:
		sess.addNoticeLocked(model.NoticeError, "Error saving your answer.")
		sess.state = StateEvaluated
	}

	return &dto.SaveResponseDTO{
		Status:  string(result.Status),
		Reason:  result.Reason,
		Session: *sess.snapshotLocked(),
	}, nil
}

func (s *recordingService) GetSession(sessionID string) (*dto.RecordingSessionDTO, error) {
	sess, err := s.findSession(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshotLocked(), nil
}

func (sess *recordingSession) addNoticeLocked(kind model.NoticeKind, message string) {
	sess.notices = append(sess.notices, model.Notice{Kind: kind, Message: message})
	if len(sess.notices) > maxSessionNotices {
		sess.notices = sess.notices[len(sess.notices)-maxSessionNotices:]
	}
	log.Info().Str("sessionID", sess.id).Str("kind", string(kind)).Str("message", message).Msg("session notice")
}

// snapshotLocked builds a DTO view of the session. Callers must hold sess.mu.
func (sess *recordingSession) snapshotLocked() *dto.RecordingSessionDTO {
	snapshot := &dto.RecordingSessionDTO{
		ID:             sess.id,
		UserID:         sess.userID,
		InterviewID:    sess.interviewID,
		QuestionID:     sess.question.ID,
		QuestionPrompt: sess.question.Prompt,
		State:          string(sess.state),
		Answer:         sess.acc.Answer(),
		Interim:        sess.acc.Interim(),
	}
	if sess.grade != nil {
		snapshot.Grade = &dto.GradeResultDTO{Rating: sess.grade.Rating, Feedback: sess.grade.Feedback}
	}
	for _, n := range sess.notices {
		snapshot.Notices = append(snapshot.Notices, dto.NoticeDTO{Kind: string(n.Kind), Message: n.Message})
	}
	return snapshot
}
