package middleware

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// Нечисловой или нулевой ID даёт 404.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			log.Printf("[ExtractUintParam] Некорректный параметр %s=%q", paramName, raw)
			helper.AbortWithError(c, http.StatusNotFound)
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
