package repository

import (
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// QuestionFilter определяет фильтры для выборки вопросов.
// Нулевые значения означают "без фильтра".
type QuestionFilter struct {
	CategoryID uint // Точное совпадение категории
}

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// List возвращает вопросы, упорядоченные по id по возрастанию
	List(filter QuestionFilter) ([]entity.Question, error)
	Delete(id uint) error
}
