package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
)

// RateLimitConfig: параметры окна ограничения
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	KeyPrefix   string
}

// WriteRateLimitConfig: лимит для создания и удаления вопросов
func WriteRateLimitConfig(maxRequests int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: maxRequests,
		Window:      window,
		KeyPrefix:   "rl:trivia:write",
	}
}

// RateLimiter считает запросы в Redis по фиксированному окну
type RateLimiter struct {
	redisClient redis.UniversalClient
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(redisClient redis.UniversalClient) *RateLimiter {
	return &RateLimiter{redisClient: redisClient}
}

// Limit возвращает middleware с лимитом cfg на пару (IP, шаблон маршрута).
// При недоступности Redis запрос пропускается.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := cfg.KeyPrefix + ":" + c.ClientIP() + ":" + route

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, ttl, err := rl.hit(ctx, key, cfg.Window)
		if err != nil {
			log.Printf("[RateLimiter] Redis недоступен (%s): %v, запрос пропущен", key, err)
			c.Next()
			return
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(count) > cfg.MaxRequests {
			log.Printf("[RateLimiter] Превышен лимит %s: %d/%d", key, count, cfg.MaxRequests)
			c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			helper.AbortWithError(c, http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}

// hit увеличивает счётчик окна и возвращает его значение и остаток окна.
// Ключ без TTL (первый запрос окна или потерянный TTL) получает TTL = window.
func (rl *RateLimiter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := rl.redisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	remaining := ttl.Val()
	if remaining <= 0 {
		if err := rl.redisClient.Expire(ctx, key, window).Err(); err != nil {
			log.Printf("[RateLimiter] Не удалось выставить TTL для %s: %v", key, err)
		}
		remaining = window
	}
	return incr.Val(), remaining, nil
}
