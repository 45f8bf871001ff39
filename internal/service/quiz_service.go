package service

import (
	"fmt"
	"log"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizplay"
)

// QuizService выдаёт вопросы для игры. Состояние игры целиком у клиента.
type QuizService struct {
	questionRepo repository.QuestionRepository
	selector     *quizplay.Selector
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository, selector *quizplay.Selector) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		selector:     selector,
	}
}

// NextQuestion выбирает следующий непоказанный вопрос для сессии.
// Если вопросов не осталось, Selection.Question == nil и ошибки нет.
func (s *QuizService) NextQuestion(session entity.QuizSession) (quizplay.Selection, error) {
	if err := session.Validate(); err != nil {
		return quizplay.Selection{}, err
	}

	pool, err := s.questionRepo.List(repository.QuestionFilter{CategoryID: session.CategoryID})
	if err != nil {
		log.Printf("[QuizService] Ошибка получения пула вопросов (category=%d): %v", session.CategoryID, err)
		return quizplay.Selection{}, fmt.Errorf("%w: failed to load quiz questions: %v", apperrors.ErrUnprocessable, err)
	}

	return s.selector.Next(pool, session)
}
