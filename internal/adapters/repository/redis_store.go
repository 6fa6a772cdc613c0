package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const DefaultRedisPrefix = "kanso:prefs:"

var _ domain.PreferenceStore = (*RedisPreferenceStore)(nil)

// RedisPreferenceStore uses Redis as the primary store. Keys never expire.
type RedisPreferenceStore struct {
	client *redis.Client
	prefix string
}

func NewRedisPreferenceStore(client *redis.Client, prefix string) *RedisPreferenceStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisPreferenceStore{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisPreferenceStore) key(k string) string {
	return r.prefix + k
}

func (r *RedisPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisPreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisPreferenceStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *RedisPreferenceStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}
