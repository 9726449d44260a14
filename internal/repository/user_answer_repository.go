package repository

import (
	"github.com/lshigami/Lorikeets/internal/model"
	"gorm.io/gorm"
)

type UserAnswerRepository interface {
	Create(answer *model.UserAnswer) error
	ExistsByUserAndQuestion(userID string, question string) (bool, error)
	FindAllByUserAndInterview(userID string, interviewID uint) ([]model.UserAnswer, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) Create(answer *model.UserAnswer) error {
	return r.db.Create(answer).Error
}

// ExistsByUserAndQuestion backs the duplicate guard: at most one saved
// answer per (userId, question text) pair.
func (r *userAnswerRepository) ExistsByUserAndQuestion(userID string, question string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserAnswer{}).
		Where("user_id = ? AND question = ?", userID, question).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userAnswerRepository) FindAllByUserAndInterview(userID string, interviewID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.
		Where("user_id = ? AND mock_id_ref = ?", userID, interviewID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}
