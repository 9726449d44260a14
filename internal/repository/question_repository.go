package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByID(id uint) (*model.Question, error)
	FindByInterviewID(interviewID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByInterviewID(interviewID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("interview_id = ?", interviewID).Order("order_in_interview ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
