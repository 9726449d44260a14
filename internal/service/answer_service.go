package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
)

// SaveStatus is the outcome category of a save-intent.
type SaveStatus string

const (
	SaveStatusSaved    SaveStatus = "saved"
	SaveStatusRejected SaveStatus = "rejected"
	SaveStatusFailed   SaveStatus = "failed"
)

// SaveResult reports how a save-intent resolved. Rejected outcomes carry a
// Reason and are informational, not errors; Failed outcomes carry the store
// error and are retryable by re-invoking save.
type SaveResult struct {
	Status SaveStatus
	Reason string
	Err    error
	Record *model.UserAnswer
}

// AnswerService persists graded attempts under the one-answer-per-(user,
// question) rule and serves saved-answer history.
type AnswerService interface {
	SaveAttempt(attempt model.AnswerAttempt, grade *model.GradeResult) SaveResult
	GetAnswersForInterview(userID string, interviewID uint) ([]dto.UserAnswerDTO, error)
}

type answerService struct {
	answerRepo repository.UserAnswerRepository
}

func NewAnswerService(answerRepo repository.UserAnswerRepository) AnswerService {
	return &answerService{answerRepo: answerRepo}
}

// SaveAttempt checks for an existing record before writing. The check and
// the write are two store round-trips, not one transaction; a concurrent
// duplicate between them is stopped by the unique index on the UserAnswer
// model and surfaces as a Failed result.
func (s *answerService) SaveAttempt(attempt model.AnswerAttempt, grade *model.GradeResult) SaveResult {
	if grade == nil {
		log.Warn().Str("userID", attempt.UserID).Msg("SaveAttempt: no grade available, nothing to save.")
		return SaveResult{Status: SaveStatusRejected, Reason: "no grade available"}
	}

	exists, err := s.answerRepo.ExistsByUserAndQuestion(attempt.UserID, attempt.QuestionPrompt)
	if err != nil {
		log.Error().Err(err).Str("userID", attempt.UserID).Msg("SaveAttempt: duplicate check failed.")
		return SaveResult{Status: SaveStatusFailed, Err: fmt.Errorf("checking for existing answer: %w", err)}
	}
	if exists {
		log.Info().Str("userID", attempt.UserID).Msg("SaveAttempt: question already answered by this user, skipping write.")
		return SaveResult{Status: SaveStatusRejected, Reason: "duplicate answer"}
	}

	record := &model.UserAnswer{
		MockIDRef:  attempt.InterviewID,
		Question:   attempt.QuestionPrompt,
		CorrectAns: attempt.ReferenceAnswer,
		UserAns:    attempt.UserText,
		Feedback:   grade.Feedback,
		Rating:     grade.Rating,
		UserID:     attempt.UserID,
	}
	if err := s.answerRepo.Create(record); err != nil {
		log.Error().Err(err).Str("userID", attempt.UserID).Msg("SaveAttempt: failed to write answer record.")
		return SaveResult{Status: SaveStatusFailed, Err: fmt.Errorf("saving answer: %w", err)}
	}

	log.Info().Uint("answerID", record.ID).Str("userID", record.UserID).Msg("SaveAttempt: answer saved.")
	return SaveResult{Status: SaveStatusSaved, Record: record}
}

func (s *answerService) GetAnswersForInterview(userID string, interviewID uint) ([]dto.UserAnswerDTO, error) {
	answers, err := s.answerRepo.FindAllByUserAndInterview(userID, interviewID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Uint("interviewID", interviewID).Msg("GetAnswersForInterview: repository error.")
		return nil, fmt.Errorf("error fetching answers for interview %d: %w", interviewID, err)
	}

	var dtos []dto.UserAnswerDTO
	if err := copier.Copy(&dtos, &answers); err != nil {
		log.Error().Err(err).Msg("GetAnswersForInterview: failed to copy answers to DTOs.")
		return nil, fmt.Errorf("error preparing answers response: %w", err)
	}
	return dtos, nil
}
