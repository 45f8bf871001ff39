package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// FlexibleID: ID, который фронтенд может прислать числом или строкой ("3").
// null и "" дают 0.
type FlexibleID uint

// UnmarshalJSON реализует json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: invalid id %s", apperrors.ErrUnprocessable, raw)
		}
		if s == "" {
			*id = 0
			return nil
		}
		raw = s
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid id %s", apperrors.ErrUnprocessable, string(data))
	}
	*id = FlexibleID(v)
	return nil
}

// CreateQuestionRequest: тело POST /questions
type CreateQuestionRequest struct {
	Question   string     `json:"question" binding:"required"`
	Answer     string     `json:"answer" binding:"required"`
	Category   FlexibleID `json:"category" binding:"required"`
	Difficulty int        `json:"difficulty" binding:"required,min=1,max=5"`
}

// SearchQuestionsRequest: тело POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory: выбранная категория викторины; id 0 означает "все"
type QuizCategory struct {
	ID   FlexibleID `json:"id"`
	Type string     `json:"type"`
}

// PlayQuizRequest: тело POST /quizzes
type PlayQuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// CategoryID возвращает ID категории викторины (0, если не выбрана)
func (r *PlayQuizRequest) CategoryID() uint {
	if r.QuizCategory == nil {
		return 0
	}
	return uint(r.QuizCategory.ID)
}
