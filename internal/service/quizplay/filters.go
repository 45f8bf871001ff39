package quizplay

import (
	"strings"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// SearchQuestions возвращает вопросы, текст которых содержит term как подстроку без учёта регистра.
// Пустой term фильтр не интерпретирует: это решение вызывающего кода.
func SearchQuestions(term string, questions []entity.Question) []entity.Question {
	needle := strings.ToLower(term)
	matched := make([]entity.Question, 0)
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matched = append(matched, q)
		}
	}
	return matched
}

// FilterByCategory возвращает вопросы, у которых категория в точности равна categoryID
func FilterByCategory(categoryID uint, questions []entity.Question) []entity.Question {
	matched := make([]entity.Question, 0)
	for _, q := range questions {
		if q.CategoryID == categoryID {
			matched = append(matched, q)
		}
	}
	return matched
}
