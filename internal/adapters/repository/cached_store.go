package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const defaultCacheTTL = 30 * time.Minute

var _ domain.PreferenceStore = (*CachedPreferenceStore)(nil)

// CachedPreferenceStore is a read-through Redis cache in front of another
// store. Cache failures are logged and fall through to the backing store.
type CachedPreferenceStore struct {
	next  domain.PreferenceStore
	cache *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedPreferenceStore(next domain.PreferenceStore, cache *redis.Client, ttl time.Duration, log *zap.Logger) *CachedPreferenceStore {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedPreferenceStore{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log.Named("cache"),
	}
}

func (r *CachedPreferenceStore) cacheKey(key string) string {
	return "kanso:cache:" + key
}

func (r *CachedPreferenceStore) invalidate(ctx context.Context, key string) {
	if err := r.cache.Del(ctx, r.cacheKey(key)).Err(); err != nil {
		r.log.Warn("failed to invalidate", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	ck := r.cacheKey(key)

	val, err := r.cache.Get(ctx, ck).Result()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		r.log.Warn("redis read error", zap.String("key", key), zap.Error(err))
	}

	val, err = r.next.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if setErr := r.cache.Set(ctx, ck, val, r.ttl).Err(); setErr != nil {
		r.log.Warn("redis set error", zap.String("key", key), zap.Error(setErr))
	}
	return val, nil
}

func (r *CachedPreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := r.next.Set(ctx, key, value); err != nil {
		return err
	}
	r.invalidate(ctx, key)
	return nil
}

func (r *CachedPreferenceStore) Delete(ctx context.Context, key string) error {
	if err := r.next.Delete(ctx, key); err != nil {
		return err
	}
	r.invalidate(ctx, key)
	return nil
}
