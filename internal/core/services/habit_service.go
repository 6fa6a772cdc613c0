package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

// MilestoneNotifier is told about every day whose completions changed.
type MilestoneNotifier interface {
	Enqueue(day domain.Date)
}

type HabitService struct {
	repo     domain.HabitRepository
	engine   *analytics.Engine
	clock    Clock
	notifier MilestoneNotifier

	// mu serialises read-modify-write of the habits blob.
	mu sync.Mutex
}

func NewHabitService(repo domain.HabitRepository, clock Clock, notifier MilestoneNotifier) *HabitService {
	return &HabitService{
		repo:     repo,
		engine:   analytics.New(clock.Location),
		clock:    clock,
		notifier: notifier,
	}
}

type ToggleHabitInput struct {
	Name string
	// Date defaults to today when zero.
	Date domain.Date
}

type ToggleResult struct {
	Habit     domain.Habit `json:"habit"`
	Date      domain.Date  `json:"date"`
	Completed bool         `json:"completed"`
	Streak    int          `json:"streak"`
}

func (s *HabitService) List(ctx context.Context) ([]domain.Habit, error) {
	return s.repo.ListHabits(ctx)
}

func (s *HabitService) Add(ctx context.Context, name string) (domain.Habit, error) {
	habit, err := domain.NewHabit(name)
	if err != nil {
		return domain.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.repo.ListHabits(ctx)
	if err != nil {
		return domain.Habit{}, err
	}
	if domain.FindHabit(habits, habit.Name) >= 0 {
		return domain.Habit{}, fmt.Errorf("%w: %q", domain.ErrHabitExists, habit.Name)
	}

	if err := s.repo.SaveHabits(ctx, append(habits, habit)); err != nil {
		return domain.Habit{}, err
	}
	return habit, nil
}

// Rename keeps the completion history under the new name.
func (s *HabitService) Rename(ctx context.Context, oldName, newName string) (domain.Habit, error) {
	clean, err := domain.NormalizeHabitName(newName)
	if err != nil {
		return domain.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.repo.ListHabits(ctx)
	if err != nil {
		return domain.Habit{}, err
	}
	idx := domain.FindHabit(habits, oldName)
	if idx < 0 {
		return domain.Habit{}, domain.ErrHabitNotFound
	}
	if clean != oldName && domain.FindHabit(habits, clean) >= 0 {
		return domain.Habit{}, fmt.Errorf("%w: %q", domain.ErrHabitExists, clean)
	}

	habits[idx] = habits[idx].Rename(clean)
	if err := s.repo.SaveHabits(ctx, habits); err != nil {
		return domain.Habit{}, err
	}
	return habits[idx], nil
}

func (s *HabitService) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.repo.ListHabits(ctx)
	if err != nil {
		return err
	}
	idx := domain.FindHabit(habits, name)
	if idx < 0 {
		return domain.ErrHabitNotFound
	}

	habits = append(habits[:idx], habits[idx+1:]...)
	return s.repo.SaveHabits(ctx, habits)
}

// Clear removes every habit with its history.
func (s *HabitService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveHabits(ctx, []domain.Habit{})
}

func (s *HabitService) Toggle(ctx context.Context, input ToggleHabitInput) (*ToggleResult, error) {
	day := input.Date
	if day.IsZero() {
		day = s.clock.Today()
	}

	s.mu.Lock()
	habits, err := s.repo.ListHabits(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	idx := domain.FindHabit(habits, input.Name)
	if idx < 0 {
		s.mu.Unlock()
		return nil, domain.ErrHabitNotFound
	}

	next, completed := habits[idx].Toggle(day)
	habits[idx] = next
	err = s.repo.SaveHabits(ctx, habits)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// Streaks are anchored at today even when an earlier day was toggled.
	today := s.clock.Today()
	if s.notifier != nil {
		s.notifier.Enqueue(today)
	}

	return &ToggleResult{
		Habit:     next,
		Date:      day,
		Completed: completed,
		Streak:    s.engine.CurrentStreak(next, today),
	}, nil
}

// Progress reports completions on day, today when day is zero.
func (s *HabitService) Progress(ctx context.Context, day domain.Date) (domain.HabitProgress, error) {
	if day.IsZero() {
		day = s.clock.Today()
	}
	habits, err := s.repo.ListHabits(ctx)
	if err != nil {
		return domain.HabitProgress{}, err
	}
	return domain.HabitProgress{
		Date:      day,
		Completed: s.engine.CompletedCount(habits, day),
		Total:     len(habits),
		Percent:   s.engine.DailyCompletionRate(habits, day),
	}, nil
}
