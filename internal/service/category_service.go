package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// CategoriesCacheKey: ключ списка категорий в кеше
const CategoriesCacheKey = "trivia:categories"

// CategoryService предоставляет чтение категорий с кешированием в Redis
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories возвращает категории, упорядоченные по type.
// Ошибки кеша не фатальны: при них читаем из БД.
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	var cached []entity.Category
	err := s.cacheRepo.GetJSON(CategoriesCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[CategoryService] WARNING: Ошибка чтения кеша категорий: %v", err)
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	// Пустой список не кешируем: категории могут появиться после миграции
	if len(categories) > 0 {
		if err := s.cacheRepo.SetJSON(CategoriesCacheKey, categories, s.cacheTTL); err != nil {
			log.Printf("[CategoryService] WARNING: Не удалось закешировать категории: %v", err)
		}
	}

	return categories, nil
}

// InvalidateCache сбрасывает кеш категорий
func (s *CategoryService) InvalidateCache() error {
	return s.cacheRepo.Delete(CategoriesCacheKey)
}
