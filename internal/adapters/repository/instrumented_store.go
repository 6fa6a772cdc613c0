package repository

import (
	"context"
	"errors"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

// StoreObserver counts store operations by outcome.
type StoreObserver interface {
	ObserveStore(op, outcome string)
}

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var _ domain.PreferenceStore = (*InstrumentedPreferenceStore)(nil)

type InstrumentedPreferenceStore struct {
	next     domain.PreferenceStore
	observer StoreObserver
}

func NewInstrumentedPreferenceStore(next domain.PreferenceStore, observer StoreObserver) *InstrumentedPreferenceStore {
	return &InstrumentedPreferenceStore{next: next, observer: observer}
}

func (r *InstrumentedPreferenceStore) record(op string, err error) {
	switch {
	case err == nil:
		r.observer.ObserveStore(op, OutcomeOK)
	case errors.Is(err, domain.ErrPreferenceNotFound):
		r.observer.ObserveStore(op, OutcomeNotFound)
	default:
		r.observer.ObserveStore(op, OutcomeError)
	}
}

func (r *InstrumentedPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.next.Get(ctx, key)
	r.record("get", err)
	return val, err
}

func (r *InstrumentedPreferenceStore) Set(ctx context.Context, key, value string) error {
	err := r.next.Set(ctx, key, value)
	r.record("set", err)
	return err
}

func (r *InstrumentedPreferenceStore) Delete(ctx context.Context, key string) error {
	err := r.next.Delete(ctx, key)
	r.record("delete", err)
	return err
}
