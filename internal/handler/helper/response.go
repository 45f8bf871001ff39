package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorMessages: тексты ошибок в конверте {"success": false, "error": code, "message": ...}
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "internal server error",
}

// ErrorBody формирует тело ответа с ошибкой для заданного HTTP-статуса
func ErrorBody(status int) gin.H {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return gin.H{
		"success": false,
		"error":   status,
		"message": message,
	}
}

// AbortWithError прерывает цепочку обработчиков и отдаёт конверт ошибки
func AbortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorBody(status))
}
