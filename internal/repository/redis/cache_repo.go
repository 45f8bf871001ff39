package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// opTimeout: таймаут одной операции с кешем
const opTimeout = 500 * time.Millisecond

// CacheRepo реализует repository.CacheRepository поверх Redis.
// Значения хранятся как JSON.
type CacheRepo struct {
	client redis.UniversalClient
}

// NewCacheRepo создает репозиторий кеша
func NewCacheRepo(client redis.UniversalClient) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for CacheRepo")
	}
	return &CacheRepo{client: client}, nil
}

func (r *CacheRepo) withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// Delete удаляет ключ; отсутствие ключа ошибкой не считается
func (r *CacheRepo) Delete(key string) error {
	ctx, cancel := r.withTimeout()
	defer cancel()

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// SetJSON сериализует value и сохраняет с TTL
func (r *CacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}

	ctx, cancel := r.withTimeout()
	defer cancel()

	if err := r.client.Set(ctx, key, payload, expiration).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// GetJSON читает ключ в dest. Промах: ErrNotFound.
func (r *CacheRepo) GetJSON(key string, dest interface{}) error {
	ctx, cancel := r.withTimeout()
	defer cancel()

	payload, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return apperrors.ErrNotFound
	case err != nil:
		return fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		// Битое значение удаляем, следующий запрос перечитает из БД.
		// Свой таймаут: ctx мог почти истечь на Get.
		delCtx, delCancel := r.withTimeout()
		defer delCancel()
		if delErr := r.client.Del(delCtx, key).Err(); delErr != nil {
			log.Printf("[CacheRepo] WARNING: Не удалось удалить битое значение %s: %v", key, delErr)
		}
		return fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return nil
}
