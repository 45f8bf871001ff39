package repository

import (
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	// List возвращает категории, упорядоченные по type
	List() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
}
