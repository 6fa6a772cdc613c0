package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

type MockStoreObserver struct {
	mock.Mock
}

func (m *MockStoreObserver) ObserveStore(op, outcome string) {
	m.Called(op, outcome)
}

type failingStore struct {
	*InMemoryPreferenceStore
	err error
}

func (s failingStore) Set(ctx context.Context, key, value string) error {
	return s.err
}

func TestInstrumentedPreferenceStore(t *testing.T) {
	ctx := context.Background()
	obs := new(MockStoreObserver)
	obs.On("ObserveStore", "get", OutcomeNotFound).Once()
	obs.On("ObserveStore", "set", OutcomeError).Once()
	obs.On("ObserveStore", "delete", OutcomeOK).Once()

	boom := errors.New("disk full")
	store := NewInstrumentedPreferenceStore(failingStore{NewInMemoryPreferenceStore(), boom}, obs)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	err = store.Set(ctx, "k", "v")
	assert.ErrorIs(t, err, boom)

	require.NoError(t, store.Delete(ctx, "k"))

	obs.AssertExpectations(t)
}
