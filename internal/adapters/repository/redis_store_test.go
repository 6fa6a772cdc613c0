package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-wellness/internal/config"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	port, _ := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
	rdb, err := cache.NewRedisClient(context.Background(), config.RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     port,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       2,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisPreferenceStore_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	ctx := context.Background()
	store := NewRedisPreferenceStore(rdb, "")

	_, err := store.Get(ctx, KeyHabits)
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	require.NoError(t, store.Set(ctx, KeyHabits, "[]"))
	require.NoError(t, store.Set(ctx, KeyGoals, "[]"))

	val, err := rdb.Get(ctx, DefaultRedisPrefix+KeyHabits).Result()
	require.NoError(t, err)
	assert.Equal(t, "[]", val)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyGoals, KeyHabits}, keys)

	require.NoError(t, store.Delete(ctx, KeyHabits))
	_, err = store.Get(ctx, KeyHabits)
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)
}

type countingStore struct {
	*InMemoryPreferenceStore
	gets int
}

func (s *countingStore) Get(ctx context.Context, key string) (string, error) {
	s.gets++
	return s.InMemoryPreferenceStore.Get(ctx, key)
}

func TestCachedPreferenceStore_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	ctx := context.Background()
	backing := &countingStore{InMemoryPreferenceStore: NewInMemoryPreferenceStore()}
	store := NewCachedPreferenceStore(backing, rdb, time.Minute, nil)

	require.NoError(t, store.Set(ctx, KeyWaterGoal, "8"))

	for i := 0; i < 3; i++ {
		val, err := store.Get(ctx, KeyWaterGoal)
		require.NoError(t, err)
		assert.Equal(t, "8", val)
	}
	assert.Equal(t, 1, backing.gets, "later reads must be served from redis")

	t.Run("Success: Set invalidates the cached value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyWaterGoal, "10"))
		val, err := store.Get(ctx, KeyWaterGoal)
		require.NoError(t, err)
		assert.Equal(t, "10", val)
	})

	t.Run("Success: Missing keys are not cached", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.True(t, errors.Is(err, domain.ErrPreferenceNotFound))
		exists, err := rdb.Exists(ctx, "kanso:cache:nope").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})
}

func TestCachedPreferenceStore_RedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	ctx := context.Background()
	backing := NewInMemoryPreferenceStore()
	store := NewCachedPreferenceStore(backing, rdb, 0, nil)

	require.NoError(t, store.Set(ctx, KeyHabits, "[]"))
	val, err := store.Get(ctx, KeyHabits)
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
}
