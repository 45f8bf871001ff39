package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/trivia-quiz-api/internal/config"
)

func TestRedisOptions(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       config.RedisConfig
		wantMode  string
		wantAddrs []string
		wantErr   bool
	}{
		{
			name:      "single по умолчанию через Addr",
			cfg:       config.RedisConfig{Addr: "localhost:6379"},
			wantMode:  "single",
			wantAddrs: []string{"localhost:6379"},
		},
		{
			name:      "single берёт только первый адрес",
			cfg:       config.RedisConfig{Mode: "single", Addrs: []string{"a:6379", "b:6379"}},
			wantMode:  "single",
			wantAddrs: []string{"a:6379"},
		},
		{
			name:      "cluster сохраняет все адреса",
			cfg:       config.RedisConfig{Mode: "cluster", Addrs: []string{"a:7000", "b:7001", "c:7002"}},
			wantMode:  "cluster",
			wantAddrs: []string{"a:7000", "b:7001", "c:7002"},
		},
		{
			name:    "sentinel без MasterName",
			cfg:     config.RedisConfig{Mode: "sentinel", Addrs: []string{"s:26379"}},
			wantErr: true,
		},
		{
			name:    "нет адресов",
			cfg:     config.RedisConfig{Mode: "single"},
			wantErr: true,
		},
		{
			name:    "неизвестный режим",
			cfg:     config.RedisConfig{Mode: "ring", Addr: "localhost:6379"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			options, mode, err := redisOptions(tc.cfg)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, mode)
			assert.Equal(t, tc.wantAddrs, options.Addrs)
		})
	}
}

func TestRedisOptions_Sentinel(t *testing.T) {
	options, mode, err := redisOptions(config.RedisConfig{
		Mode:            "sentinel",
		Addrs:           []string{"s1:26379", "s2:26379"},
		MasterName:      "mymaster",
		Password:        "secret",
		DB:              2,
		MinRetryBackoff: 8,
		MaxRetryBackoff: 512,
	})

	require.NoError(t, err)
	assert.Equal(t, "sentinel", mode)
	assert.Equal(t, "mymaster", options.MasterName)
	assert.Equal(t, []string{"s1:26379", "s2:26379"}, options.Addrs)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 8*time.Millisecond, options.MinRetryBackoff)
	assert.Equal(t, 512*time.Millisecond, options.MaxRetryBackoff)
}
