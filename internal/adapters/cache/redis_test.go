package cache

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/config"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testRedisConfig returns connection settings for integration tests, on DB 1
// so a developer's data on DB 0 is never flushed.
func testRedisConfig() config.RedisConfig {
	_ = godotenv.Load("../../../.env")

	port, err := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	return config.RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     port,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       1,
	}
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "cache:6380", Addr(config.RedisConfig{Host: "cache", Port: 6380}))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestRedisClient_Integration(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), testRedisConfig())
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	require.NoError(t, rdb.FlushDB(ctx).Err(), "Failed to flush test DB")

	t.Run("Set and Get Value", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "kanso:test", "hello", time.Minute).Err())

		val, err := rdb.Get(ctx, "kanso:test").Result()
		assert.NoError(t, err)
		assert.Equal(t, "hello", val)
	})

	t.Run("Expire Check", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "kanso:expire", "x", time.Second).Err())
		time.Sleep(1100 * time.Millisecond)

		_, err := rdb.Get(ctx, "kanso:expire").Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}
