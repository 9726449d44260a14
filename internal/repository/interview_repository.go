package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindByIDWithQuestions(id uint) (*model.Interview, error)
	FindAllWithQuestionCount() ([]InterviewWithQuestionCount, error)
}

// InterviewWithQuestionCount pairs an interview row with its question count
// for summary listings.
type InterviewWithQuestionCount struct {
	model.Interview
	QuestionCount int
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	// GORM creates the associated questions when interview.Questions is
	// populated, via the Questions foreignKey on the Interview model.
	return r.db.Create(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.First(&interview, id).Error
	return &interview, err
}

func (r *interviewRepository) FindByIDWithQuestions(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_interview ASC")
	}).First(&interview, id).Error
	return &interview, err
}

func (r *interviewRepository) FindAllWithQuestionCount() ([]InterviewWithQuestionCount, error) {
	var results []InterviewWithQuestionCount
	err := r.db.Model(&model.Interview{}).
		Select("interviews.*, (SELECT COUNT(*) FROM questions WHERE questions.interview_id = interviews.id AND questions.deleted_at IS NULL) as question_count").
		Where("interviews.deleted_at IS NULL").
		Order("interviews.created_at DESC").
		Scan(&results).Error
	return results, err
}
