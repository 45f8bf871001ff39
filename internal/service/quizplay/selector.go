package quizplay

import (
	"log"
	"math/rand/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// Rand: источник случайности для выбора вопроса.
// Реализуется *rand.Rand из math/rand/v2; в тестах подменяется детерминированным.
type Rand interface {
	IntN(n int) int
}

// globalRand использует глобальный генератор math/rand/v2, безопасный для конкурентного доступа
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Selection: результат выбора очередного вопроса
type Selection struct {
	// Question == nil означает, что непоказанных вопросов не осталось (викторина завершена)
	Question *entity.Question
	// PreviousQuestions: обновлённый список исключений, который клиент пришлёт в следующем запросе
	PreviousQuestions []uint
}

// Selector выбирает случайный непоказанный вопрос. Состояния между вызовами не хранит.
type Selector struct {
	rnd Rand
}

// NewSelector создает селектор. Если rnd == nil, используется глобальный генератор.
func NewSelector(rnd Rand) *Selector {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Selector{rnd: rnd}
}

// Next выбирает равновероятно один вопрос из пула за вычетом уже показанных.
// Если у сессии задана категория, в пул попадают только вопросы этой категории.
// Срез session.PreviousQuestions не изменяется: возвращается новый.
func (s *Selector) Next(pool []entity.Question, session entity.QuizSession) (Selection, error) {
	if err := session.Validate(); err != nil {
		return Selection{}, err
	}

	candidates := s.Candidates(pool, session)

	previous := make([]uint, len(session.PreviousQuestions), len(session.PreviousQuestions)+1)
	copy(previous, session.PreviousQuestions)

	if len(candidates) == 0 {
		log.Printf("[QuizSelector] Пул исчерпан: category=%d, previous=%d", session.CategoryID, len(previous))
		return Selection{Question: nil, PreviousQuestions: previous}, nil
	}

	picked := candidates[s.rnd.IntN(len(candidates))]

	return Selection{
		Question:          &picked,
		PreviousQuestions: append(previous, picked.ID),
	}, nil
}

// Candidates возвращает пул: вопросы категории сессии (или все), кроме уже показанных
func (s *Selector) Candidates(pool []entity.Question, session entity.QuizSession) []entity.Question {
	if session.CategoryID != 0 {
		pool = FilterByCategory(session.CategoryID, pool)
	}

	excluded := session.Excluded()
	candidates := make([]entity.Question, 0, len(pool))
	for _, q := range pool {
		if _, seen := excluded[q.ID]; seen {
			continue
		}
		candidates = append(candidates, q)
	}
	return candidates
}
