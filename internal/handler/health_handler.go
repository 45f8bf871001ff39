package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	pingDB func() error
}

// NewHealthHandler создает обработчик; pingDB проверяет доступность БД
func NewHealthHandler(pingDB func() error) *HealthHandler {
	return &HealthHandler{pingDB: pingDB}
}

// Health возвращает 200, если база данных доступна, иначе 503
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.pingDB(); err != nil {
		log.Printf("[Health] База данных недоступна: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "database": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "database": "ok"})
}
