package quizplay

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// sequenceRand возвращает заранее заданные индексы (по модулю n)
type sequenceRand struct {
	seq   []int
	calls int
	ns    []int
}

func (r *sequenceRand) IntN(n int) int {
	r.ns = append(r.ns, n)
	v := r.seq[r.calls%len(r.seq)]
	r.calls++
	return v % n
}

func fivePool() []entity.Question {
	return []entity.Question{
		{ID: 1, Question: "Q1", Answer: "A1", CategoryID: 1, Difficulty: 1},
		{ID: 2, Question: "Q2", Answer: "A2", CategoryID: 3, Difficulty: 2},
		{ID: 3, Question: "Q3", Answer: "A3", CategoryID: 1, Difficulty: 3},
		{ID: 4, Question: "Q4", Answer: "A4", CategoryID: 3, Difficulty: 4},
		{ID: 5, Question: "Q5", Answer: "A5", CategoryID: 2, Difficulty: 5},
	}
}

func TestSelector_Next_AnyCategory(t *testing.T) {
	// Arrange
	selector := NewSelector(rand.New(rand.NewPCG(1, 2)))

	// Act
	selection, err := selector.Next(fivePool(), entity.QuizSession{})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, selection.Question)
	assert.Contains(t, []uint{1, 2, 3, 4, 5}, selection.Question.ID)
	assert.Equal(t, []uint{selection.Question.ID}, selection.PreviousQuestions)
}

func TestSelector_Next_OnlyRemainingCandidateInCategory(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewPCG(7, 7)))
	session := entity.QuizSession{CategoryID: 3, PreviousQuestions: []uint{2}}

	for i := 0; i < 20; i++ {
		selection, err := selector.Next(fivePool(), session)

		require.NoError(t, err)
		require.NotNil(t, selection.Question)
		assert.Equal(t, uint(4), selection.Question.ID, "единственный оставшийся кандидат должен выбираться детерминированно")
		assert.Equal(t, []uint{2, 4}, selection.PreviousQuestions)
	}
}

func TestSelector_Next_EmptyCategoryIsSuccess(t *testing.T) {
	selector := NewSelector(&sequenceRand{seq: []int{0}})

	selection, err := selector.Next(fivePool(), entity.QuizSession{CategoryID: 7})

	require.NoError(t, err, "пустой пул означает завершение викторины, а не ошибку")
	assert.Nil(t, selection.Question)
	assert.NotNil(t, selection.PreviousQuestions)
	assert.Empty(t, selection.PreviousQuestions)
}

func TestSelector_Next_ExhaustsPoolWithoutRepeats(t *testing.T) {
	pool := fivePool()
	selector := NewSelector(rand.New(rand.NewPCG(42, 1024)))

	previous := []uint{5, 1}
	seen := map[uint]bool{5: true, 1: true}

	// K=5, E=2 → ровно 3 вопроса, затем none
	for call := 1; call <= len(pool)-2; call++ {
		selection, err := selector.Next(pool, entity.QuizSession{PreviousQuestions: previous})
		require.NoError(t, err)
		require.NotNil(t, selection.Question, "вызов %d должен вернуть вопрос", call)

		id := selection.Question.ID
		assert.False(t, seen[id], "вопрос %d выдан повторно", id)
		seen[id] = true
		assert.Len(t, selection.PreviousQuestions, len(previous)+1)
		previous = selection.PreviousQuestions
	}

	selection, err := selector.Next(pool, entity.QuizSession{PreviousQuestions: previous})
	require.NoError(t, err)
	assert.Nil(t, selection.Question, "после исчерпания пула вопрос должен быть nil")
	assert.ElementsMatch(t, []uint{1, 2, 3, 4, 5}, selection.PreviousQuestions)
}

func TestSelector_Next_StaysInCategory(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewPCG(3, 5)))
	session := entity.QuizSession{CategoryID: 1}

	for {
		selection, err := selector.Next(fivePool(), session)
		require.NoError(t, err)
		if selection.Question == nil {
			break
		}
		assert.Equal(t, uint(1), selection.Question.CategoryID)
		session.PreviousQuestions = selection.PreviousQuestions
	}
	assert.ElementsMatch(t, []uint{1, 3}, session.PreviousQuestions)
}

func TestSelector_Next_UsesRandomIndexOverCandidates(t *testing.T) {
	// Кандидаты после исключения {2}: [1, 3, 4, 5]; индекс 2 → вопрос 4
	rnd := &sequenceRand{seq: []int{2}}
	selector := NewSelector(rnd)

	selection, err := selector.Next(fivePool(), entity.QuizSession{PreviousQuestions: []uint{2}})

	require.NoError(t, err)
	require.NotNil(t, selection.Question)
	assert.Equal(t, uint(4), selection.Question.ID)
	assert.Equal(t, []int{4}, rnd.ns, "IntN должен вызываться с размером пула кандидатов")
}

func TestSelector_Next_DoesNotMutateCallerSlice(t *testing.T) {
	selector := NewSelector(&sequenceRand{seq: []int{0}})
	previous := make([]uint, 1, 10)
	previous[0] = 3

	selection, err := selector.Next(fivePool(), entity.QuizSession{PreviousQuestions: previous})

	require.NoError(t, err)
	assert.Equal(t, []uint{3}, previous)
	assert.Equal(t, uint(3), previous[:2][0])
	assert.Equal(t, uint(0), previous[:2][1], "резерв ёмкости исходного среза не должен перезаписываться")
	assert.Equal(t, []uint{3, 1}, selection.PreviousQuestions)
}

func TestSelector_Next_MalformedExclusion(t *testing.T) {
	selector := NewSelector(nil)

	_, err := selector.Next(fivePool(), entity.QuizSession{PreviousQuestions: []uint{1, 0}})

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestSelector_Next_UniformDistribution(t *testing.T) {
	pool := fivePool()
	selector := NewSelector(rand.New(rand.NewPCG(2024, 10)))
	session := entity.QuizSession{PreviousQuestions: []uint{5}}

	const draws = 40000
	counts := map[uint]int{}
	for i := 0; i < draws; i++ {
		selection, err := selector.Next(pool, session)
		require.NoError(t, err)
		counts[selection.Question.ID]++
	}

	require.Len(t, counts, 4)
	expected := draws / 4
	for id, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)*0.05, "вопрос %d выбирается неравномерно", id)
	}
}
