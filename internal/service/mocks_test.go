package service

import (
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
)

// ============================================================================
// Моки репозиториев для тестов сервисов
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) List(filter repository.QuestionFilter) ([]entity.Question, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// MockCacheRepository реализует repository.CacheRepository.
// Для GetJSON второй аргумент Return: значение, которое будет записано в dest.
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepository) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	if err := args.Error(0); err != nil {
		return err
	}
	if len(args) > 1 && args.Get(1) != nil {
		data, _ := json.Marshal(args.Get(1))
		return json.Unmarshal(data, dest)
	}
	return nil
}

func sampleQuestions() []entity.Question {
	return []entity.Question{
		{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination?", Answer: "Apollo 13", CategoryID: 5, Difficulty: 4},
		{ID: 4, Question: "What actor did author Anne Rice first denounce?", Answer: "Tom Cruise", CategoryID: 5, Difficulty: 4},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", CategoryID: 4, Difficulty: 1},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", CategoryID: 6, Difficulty: 3},
		{ID: 11, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", CategoryID: 6, Difficulty: 4},
	}
}
