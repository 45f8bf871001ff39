package entity

import (
	"fmt"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// QuizSession: состояние игры, которое хранит и присылает клиент.
// На сервере сессия не сохраняется: список показанных вопросов
// приходит с каждым запросом и возвращается обновлённым.
type QuizSession struct {
	// CategoryID == 0 означает "все категории"
	CategoryID uint
	// PreviousQuestions: ID уже показанных вопросов (множество исключений)
	PreviousQuestions []uint
}

// Validate проверяет список исключений: ID вопроса не может быть нулевым.
func (s QuizSession) Validate() error {
	for i, id := range s.PreviousQuestions {
		if id == 0 {
			return fmt.Errorf("%w: previous_questions[%d] is not a valid question id", apperrors.ErrUnprocessable, i)
		}
	}
	return nil
}

// Excluded возвращает множество исключённых ID
func (s QuizSession) Excluded() map[uint]struct{} {
	excluded := make(map[uint]struct{}, len(s.PreviousQuestions))
	for _, id := range s.PreviousQuestions {
		excluded[id] = struct{}{}
	}
	return excluded
}
