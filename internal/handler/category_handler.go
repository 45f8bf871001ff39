package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает словарь категорий; если категорий нет: 404
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	if len(categories) == 0 {
		respondError(c, apperrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: entity.CategoryMap(categories),
	})
}

// ListCategoryQuestions возвращает вопросы категории; пустой список: 404
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	questions, err := h.questionService.QuestionsByCategory(categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(questions) == 0 {
		respondError(c, apperrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, len(questions), nil, &categoryID))
}
