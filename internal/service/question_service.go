package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizplay"
)

// QuestionPage: страница списка вопросов
type QuestionPage struct {
	Questions []entity.Question
	Total     int
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	perPage      int
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	perPage int,
) *QuestionService {
	if perPage < 1 {
		perPage = pagination.DefaultPageSize
	}
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		perPage:      perPage,
	}
}

// ListQuestions возвращает страницу вопросов, упорядоченных по id, и их общее количество.
// Пустая страница ошибкой не считается: решение принимает хендлер.
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.List(repository.QuestionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return &QuestionPage{
		Questions: pagination.Paginate(page, s.perPage, questions),
		Total:     len(questions),
	}, nil
}

// AllQuestions возвращает все вопросы (для экспорта)
func (s *QuestionService) AllQuestions() ([]entity.Question, error) {
	return s.questionRepo.List(repository.QuestionFilter{})
}

// GetQuestion возвращает вопрос по ID
func (s *QuestionService) GetQuestion(id uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(id)
}

// CreateQuestion проверяет и сохраняет новый вопрос.
// Любая неудача вставки сообщается как ErrUnprocessable.
func (s *QuestionService) CreateQuestion(question *entity.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	if _, err := s.categoryRepo.GetByID(question.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %d does not exist", apperrors.ErrUnprocessable, question.CategoryID)
		}
		return fmt.Errorf("%w: failed to check category: %v", apperrors.ErrUnprocessable, err)
	}

	if err := s.questionRepo.Create(question); err != nil {
		log.Printf("[QuestionService] Ошибка создания вопроса: %v", err)
		return fmt.Errorf("%w: failed to create question: %v", apperrors.ErrUnprocessable, err)
	}

	log.Printf("[QuestionService] Создан вопрос ID=%d (category=%d)", question.ID, question.CategoryID)
	return nil
}

// DeleteQuestion удаляет вопрос. Отсутствующий вопрос: ErrNotFound,
// прочие сбои хранилища: ErrUnprocessable.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("question %d: %w", id, apperrors.ErrNotFound)
		}
		log.Printf("[QuestionService] Ошибка удаления вопроса ID=%d: %v", id, err)
		return fmt.Errorf("%w: failed to delete question %d: %v", apperrors.ErrUnprocessable, id, err)
	}

	log.Printf("[QuestionService] Удалён вопрос ID=%d", id)
	return nil
}

// SearchQuestions возвращает вопросы, содержащие term (без учёта регистра).
// Пустой term считается необрабатываемым запросом; пробельный term ищется как есть.
func (s *QuestionService) SearchQuestions(term string) ([]entity.Question, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", apperrors.ErrUnprocessable)
	}

	questions, err := s.questionRepo.List(repository.QuestionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	return quizplay.SearchQuestions(term, questions), nil
}

// QuestionsByCategory возвращает вопросы категории
func (s *QuestionService) QuestionsByCategory(categoryID uint) ([]entity.Question, error) {
	questions, err := s.questionRepo.List(repository.QuestionFilter{CategoryID: categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	return questions, nil
}
