package services

import (
	"context"
	"sort"
	"sync"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

type MoodService struct {
	repo  domain.MoodRepository
	clock Clock
	mu    sync.Mutex
}

func NewMoodService(repo domain.MoodRepository, clock Clock) *MoodService {
	return &MoodService{
		repo:  repo,
		clock: clock,
	}
}

func (s *MoodService) Log(ctx context.Context, emoji, note string) (domain.MoodEntry, error) {
	entry, err := domain.NewMoodEntry(emoji, note, s.clock.Now())
	if err != nil {
		return domain.MoodEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	moods, err := s.repo.ListMoods(ctx)
	if err != nil {
		return domain.MoodEntry{}, err
	}
	if err := s.repo.SaveMoods(ctx, append(moods, entry)); err != nil {
		return domain.MoodEntry{}, err
	}
	return entry, nil
}

// List returns entries newest first.
func (s *MoodService) List(ctx context.Context) ([]domain.MoodEntry, error) {
	moods, err := s.repo.ListMoods(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(moods, func(i, j int) bool {
		return moods[i].Timestamp > moods[j].Timestamp
	})
	return moods, nil
}

func (s *MoodService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ClearMoods(ctx)
}
