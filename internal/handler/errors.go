package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// respondError переводит ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		helper.AbortWithError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrUnprocessable):
		log.Printf("[Handler] %s %s: %v", c.Request.Method, c.FullPath(), err)
		helper.AbortWithError(c, http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrBadRequest):
		log.Printf("[Handler] %s %s: %v", c.Request.Method, c.FullPath(), err)
		helper.AbortWithError(c, http.StatusBadRequest)
	default:
		log.Printf("ERROR: Internal server error in %s %s: %v", c.Request.Method, c.FullPath(), err)
		helper.AbortWithError(c, http.StatusInternalServerError)
	}
}

// bindJSON разбирает тело запроса и классифицирует ошибку:
// битый JSON даёт ErrBadRequest, корректный JSON с неверными значениями даёт ErrUnprocessable.
func bindJSON(c *gin.Context, dest interface{}) error {
	err := c.ShouldBindJSON(dest)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var validationErrs validator.ValidationErrors
	if errors.Is(err, apperrors.ErrUnprocessable) || errors.As(err, &typeErr) || errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrUnprocessable, err)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
}
