package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/yourusername/trivia-quiz-api/internal/config"
)

const redisPingTimeout = 5 * time.Second

// redisAddresses возвращает список адресов: Addrs, либо одиночный Addr
func redisAddresses(cfg config.RedisConfig) ([]string, error) {
	if len(cfg.Addrs) > 0 {
		return cfg.Addrs, nil
	}
	if cfg.Addr != "" {
		return []string{cfg.Addr}, nil
	}
	return nil, fmt.Errorf("redis configuration error: Addrs or Addr must be provided")
}

// redisOptions собирает UniversalOptions по конфигурации с учётом режима
func redisOptions(cfg config.RedisConfig) (*redis.UniversalOptions, string, error) {
	addresses, err := redisAddresses(cfg)
	if err != nil {
		return nil, "", err
	}

	options := &redis.UniversalOptions{
		Addrs:           addresses,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoff) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoff) * time.Millisecond,
	}

	mode := cfg.Mode
	if mode == "" {
		mode = "single"
	}

	switch mode {
	case "sentinel":
		if cfg.MasterName == "" {
			return nil, mode, fmt.Errorf("redis sentinel mode requires MasterName")
		}
		// NewUniversalClient распознаёт sentinel по MasterName
		options.MasterName = cfg.MasterName
	case "single":
		// Для single берём только первый адрес, иначе UniversalClient поднимет cluster
		options.Addrs = addresses[:1]
	case "cluster":
	default:
		return nil, mode, fmt.Errorf("unsupported redis mode: %s", mode)
	}

	return options, mode, nil
}

// NewUniversalRedisClient создает клиент Redis (single, sentinel, cluster) и проверяет подключение
func NewUniversalRedisClient(cfg config.RedisConfig) (redis.UniversalClient, error) {
	options, mode, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewUniversalClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (mode: %s, addrs: %v): %w", mode, options.Addrs, err)
	}

	return client, nil
}
