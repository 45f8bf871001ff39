package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/handler"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-quiz-api/internal/repository/redis"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizplay"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), !isProduction)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo, cfg.Trivia.QuestionsPerPage)
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Trivia.CategoriesCacheTTL)
	quizService := service.NewQuizService(questionRepo, quizplay.NewSelector(nil))

	// Миграции могли изменить справочник категорий
	if err := categoryService.InvalidateCache(); err != nil {
		log.Printf("Warning: failed to invalidate categories cache: %v", err)
	}

	// Инициализируем обработчики
	handlers := handler.Handlers{
		Question: handler.NewQuestionHandler(questionService, categoryService),
		Category: handler.NewCategoryHandler(categoryService, questionService),
		Quiz:     handler.NewQuizHandler(quizService),
		Health:   handler.NewHealthHandler(func() error { return database.Ping(db) }),
	}

	// Инициализируем роутер Gin
	router := gin.Default()

	// В production не доверяем прокси-заголовкам, в development доверяем localhost
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(middleware.RequestID())

	// Настройка CORS
	router.Use(cors.New(corsConfig(cfg.CORS)))

	var writeGuards []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(redisClient)
		writeGuards = append(writeGuards, rateLimiter.Limit(middleware.WriteRateLimitConfig(
			cfg.RateLimit.MaxRequests,
			time.Duration(cfg.RateLimit.WindowSec)*time.Second,
		)))
		log.Printf("Rate limit на изменяющие эндпоинты: %d запросов / %d с", cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSec)
	}

	// Настраиваем маршруты API
	handler.RegisterRoutes(router, handlers, writeGuards...)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited properly")
}

// corsConfig разрешает только методы, на которых есть маршруты API
func corsConfig(cfg config.CORSConfig) cors.Config {
	return cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
}
