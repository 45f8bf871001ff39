package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
)

// Handlers: набор обработчиков, регистрируемых в роутере
type Handlers struct {
	Question *QuestionHandler
	Category *CategoryHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// RegisterRoutes настраивает маршруты API.
// writeGuards применяются к изменяющим эндпоинтам (POST/DELETE вопросов), например rate limit.
func RegisterRoutes(router *gin.Engine, h Handlers, writeGuards ...gin.HandlerFunc) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		helper.AbortWithError(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		helper.AbortWithError(c, http.StatusMethodNotAllowed)
	})

	guarded := func(final gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(writeGuards)+1)
		return append(append(chain, writeGuards...), final)
	}

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/categories", h.Category.ListCategories)

		categoryWithID := api.Group("/categories/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
		{
			categoryWithID.GET("/questions", h.Category.ListCategoryQuestions)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", h.Question.ListQuestions)
			questions.GET("/export", h.Question.ExportQuestions)
			questions.POST("", guarded(h.Question.CreateQuestion)...)
			questions.POST("/search", h.Question.SearchQuestions)

			questionWithID := questions.Group("/:id")
			questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
			{
				questionWithID.GET("", h.Question.GetQuestion)
				questionWithID.DELETE("", guarded(h.Question.DeleteQuestion)...)
			}
		}

		api.POST("/quizzes", h.Quiz.PlayQuiz)
	}
}
