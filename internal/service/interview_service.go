package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/model"
	"github.com/lshigami/Lorikeets/internal/repository"
	"github.com/rs/zerolog/log"
)

// InterviewService covers interview authoring (admin) and browsing (user).
type InterviewService interface {
	CreateInterview(req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error)
	GetAllInterviews() ([]dto.InterviewSummaryDTO, error)
	GetInterviewDetails(interviewID uint) (*dto.InterviewResponseDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
}

func NewInterviewService(interviewRepo repository.InterviewRepository) InterviewService {
	return &interviewService{interviewRepo: interviewRepo}
}

func (s *interviewService) CreateInterview(req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error) {
	orderMap := make(map[int]bool)
	var questionModels []model.Question

	for _, qDto := range req.Questions {
		if orderMap[qDto.OrderInInterview] {
			return nil, fmt.Errorf("duplicate OrderInInterview %d found in questions", qDto.OrderInInterview)
		}
		orderMap[qDto.OrderInInterview] = true

		var questionModel model.Question
		copier.Copy(&questionModel, &qDto)
		questionModels = append(questionModels, questionModel)
	}

	interviewModel := model.Interview{
		Position:    req.Position,
		Description: req.Description,
		Questions:   questionModels,
	}

	if err := s.interviewRepo.Create(&interviewModel); err != nil {
		log.Error().Err(err).Msg("Failed to create interview in database")
		return nil, fmt.Errorf("database error creating interview: %w", err)
	}

	createdWithQuestions, err := s.interviewRepo.FindByIDWithQuestions(interviewModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewModel.ID).Msg("Failed to reload newly created interview for response")
		var fallbackResp dto.InterviewResponseDTO
		copier.Copy(&fallbackResp, &interviewModel)
		return &fallbackResp, nil
	}

	var resp dto.InterviewResponseDTO
	if err := copier.Copy(&resp, createdWithQuestions); err != nil {
		log.Error().Err(err).Msg("Failed to copy created Interview model to response DTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *interviewService) GetAllInterviews() ([]dto.InterviewSummaryDTO, error) {
	interviewsWithCount, err := s.interviewRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get interviews with question count from repository")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	var dtos []dto.InterviewSummaryDTO
	for _, iwc := range interviewsWithCount {
		dtos = append(dtos, dto.InterviewSummaryDTO{
			ID:            iwc.Interview.ID,
			Position:      iwc.Interview.Position,
			Description:   iwc.Interview.Description,
			QuestionCount: iwc.QuestionCount,
			CreatedAt:     iwc.Interview.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *interviewService) GetInterviewDetails(interviewID uint) (*dto.InterviewResponseDTO, error) {
	interview, err := s.interviewRepo.FindByIDWithQuestions(interviewID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("Failed to get interview details from repository")
		return nil, fmt.Errorf("interview not found with ID %d: %w", interviewID, err)
	}

	var resp dto.InterviewResponseDTO
	if err := copier.Copy(&resp, interview); err != nil {
		log.Error().Err(err).Msg("Failed to copy Interview model to response DTO")
		return nil, fmt.Errorf("error preparing interview details response: %w", err)
	}
	return &resp, nil
}
