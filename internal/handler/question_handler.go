package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу вопросов (?page=N) со списком категорий.
// Пустая страница: 404.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.ListQuestions(page)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(result.Questions) == 0 {
		respondError(c, apperrors.ErrNotFound)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(result.Questions, result.Total, entity.CategoryMap(categories), nil))
}

// GetQuestion возвращает вопрос по ID
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	question, err := h.questionService.GetQuestion(questionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionResponse{Success: true, Question: question.Format()})
}

// CreateQuestion создает вопрос и возвращает обновлённую страницу списка
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	question := &entity.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: uint(req.Category),
		Difficulty: req.Difficulty,
	}
	if err := h.questionService.CreateQuestion(question); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.questionService.ListQuestions(pagination.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      entity.FormatQuestions(page.Questions),
		TotalQuestions: page.Total,
	})
}

// DeleteQuestion удаляет вопрос и возвращает обновлённую страницу списка
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.questionService.ListQuestions(pagination.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      entity.FormatQuestions(page.Questions),
		TotalQuestions: page.Total,
	})
}

// SearchQuestions ищет вопросы по подстроке searchTerm без учёта регистра.
// Пустой результат поиска: успешный ответ с пустым списком.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	questions, err := h.questionService.SearchQuestions(req.SearchTerm)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, len(questions), nil, nil))
}
