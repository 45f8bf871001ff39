package dto

import (
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// CategoriesResponse: словарь категорий id -> type
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

// QuestionListResponse: список вопросов (страница, поиск или категория)
type QuestionListResponse struct {
	Success         bool                       `json:"success"`
	Questions       []entity.FormattedQuestion `json:"questions"`
	TotalQuestions  int                        `json:"total_questions"`
	Categories      map[string]string          `json:"categories,omitempty"`
	CurrentCategory *uint                      `json:"current_category"` // null: "все категории"
}

// QuestionResponse: один вопрос
type QuestionResponse struct {
	Success  bool                     `json:"success"`
	Question entity.FormattedQuestion `json:"question"`
}

// CreatedQuestionResponse: ответ на создание вопроса
type CreatedQuestionResponse struct {
	Success        bool                       `json:"success"`
	Created        uint                       `json:"created"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// DeletedQuestionResponse: ответ на удаление вопроса
type DeletedQuestionResponse struct {
	Success        bool                       `json:"success"`
	Deleted        uint                       `json:"deleted"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// QuizQuestionResponse: очередной вопрос викторины.
// Question == nil (JSON null) означает, что вопросы закончились.
type QuizQuestionResponse struct {
	Success           bool                      `json:"success"`
	Question          *entity.FormattedQuestion `json:"question"`
	PreviousQuestions []uint                    `json:"previous_questions"`
}

// NewQuestionListResponse создает DTO списка вопросов
func NewQuestionListResponse(questions []entity.Question, total int, categories map[string]string, currentCategory *uint) *QuestionListResponse {
	return &QuestionListResponse{
		Success:         true,
		Questions:       entity.FormatQuestions(questions),
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: currentCategory,
	}
}

// NewQuizQuestionResponse создает DTO очередного вопроса викторины
func NewQuizQuestionResponse(question *entity.Question, previous []uint) *QuizQuestionResponse {
	resp := &QuizQuestionResponse{
		Success:           true,
		PreviousQuestions: previous,
	}
	if resp.PreviousQuestions == nil {
		resp.PreviousQuestions = []uint{}
	}
	if question != nil {
		formatted := question.Format()
		resp.Question = &formatted
	}
	return resp
}
