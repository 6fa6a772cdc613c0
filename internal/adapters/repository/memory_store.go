package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

var _ domain.PreferenceStore = (*InMemoryPreferenceStore)(nil)

type InMemoryPreferenceStore struct {
	store map[string]string

	mu sync.RWMutex
}

func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{
		store: make(map[string]string),
	}
}

func (r *InMemoryPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.store[key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return val, nil
}

func (r *InMemoryPreferenceStore) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[key] = value
	return nil
}

func (r *InMemoryPreferenceStore) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, key)
	return nil
}

// Keys lists stored keys in lexical order.
func (r *InMemoryPreferenceStore) Keys(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.store))
	for k := range r.store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
