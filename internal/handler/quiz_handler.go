package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuizHandler обрабатывает игровые запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// PlayQuiz возвращает случайный ещё не показанный вопрос и обновлённый previous_questions.
// Когда вопросы закончились, отвечает success=true и question=null.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req dto.PlayQuizRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	selection, err := h.quizService.NextQuestion(entity.QuizSession{
		CategoryID:        req.CategoryID(),
		PreviousQuestions: req.PreviousQuestions,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizQuestionResponse(selection.Question, selection.PreviousQuestions))
}
