package entity

import (
	"fmt"
	"strings"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// Допустимый диапазон сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"column:question;not null" json:"question"`
	Answer     string `gorm:"column:answer;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// FormattedQuestion: представление вопроса в ответах API
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Format возвращает вопрос в формате для клиента
func (q *Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// Validate проверяет поля нового вопроса перед вставкой.
// ID не проверяется: его назначает хранилище.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrUnprocessable)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer text is required", apperrors.ErrUnprocessable)
	}
	if q.CategoryID == 0 {
		return fmt.Errorf("%w: category is required", apperrors.ErrUnprocessable)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty must be between %d and %d", apperrors.ErrUnprocessable, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// FormatQuestions преобразует список вопросов в клиентский формат.
// Для пустого списка возвращает пустой (не nil) срез, чтобы в JSON был [].
func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, 0, len(questions))
	for i := range questions {
		formatted = append(formatted, questions[i].Format())
	}
	return formatted
}
