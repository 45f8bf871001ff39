package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос. ID назначается базой данных.
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List возвращает вопросы по фильтру, упорядоченные по id
func (r *QuestionRepo) List(filter repository.QuestionFilter) ([]entity.Question, error) {
	var questions []entity.Question

	query := r.db.Model(&entity.Question{})
	if filter.CategoryID != 0 {
		query = query.Where("category = ?", filter.CategoryID)
	}

	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Delete удаляет вопрос. Если вопроса нет: ErrNotFound, транзакция откатывается.
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entity.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
