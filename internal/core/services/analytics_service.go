package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

// AnalyticsObserver records how long each analytics view took to compute.
type AnalyticsObserver interface {
	ObserveAnalytics(view string, took time.Duration)
}

type AnalyticsRepositories struct {
	Habits     domain.HabitRepository
	Moods      domain.MoodRepository
	Water      domain.HydrationRepository
	Meditation domain.MeditationRepository
	// Settings is optional; without it Milestones is always empty.
	Settings domain.SettingsRepository
}

type AnalyticsService struct {
	repos    AnalyticsRepositories
	engine   *analytics.Engine
	clock    Clock
	observer AnalyticsObserver
}

func NewAnalyticsService(repos AnalyticsRepositories, clock Clock, observer AnalyticsObserver) *AnalyticsService {
	return &AnalyticsService{
		repos:    repos,
		engine:   analytics.New(clock.Location),
		clock:    clock,
		observer: observer,
	}
}

// snapshot loads every collection in parallel. Water is read for the week
// ending at day only.
func (s *AnalyticsService) snapshot(ctx context.Context, day domain.Date) (domain.Snapshot, error) {
	var snap domain.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		habits, err := s.repos.Habits.ListHabits(gctx)
		snap.Habits = habits
		return err
	})
	g.Go(func() error {
		moods, err := s.repos.Moods.ListMoods(gctx)
		snap.Moods = moods
		return err
	})
	g.Go(func() error {
		water, err := loadWater(gctx, s.repos.Water, day, historyDays)
		snap.Water = water
		return err
	})
	g.Go(func() error {
		sessions, err := s.repos.Meditation.ListSessions(gctx)
		snap.Meditation = sessions
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

func (s *AnalyticsService) observe(view string, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveAnalytics(view, time.Since(start))
	}
}

func (s *AnalyticsService) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	start := time.Now()
	now := s.clock.Now()

	snap, err := s.snapshot(ctx, s.engine.Today(now))
	if err != nil {
		return nil, err
	}
	summary := s.engine.Summary(snap, now)
	s.observe("summary", start)
	return &summary, nil
}

func (s *AnalyticsService) Calendar(ctx context.Context, year int, month time.Month) (*domain.MonthCalendar, error) {
	start := time.Now()
	today := s.clock.Today()
	if year == 0 || month == 0 {
		year, month = today.Year(), today.Month()
	}
	if month < time.January || month > time.December {
		return nil, domain.ErrInvalidDate
	}

	snap, err := s.snapshot(ctx, today)
	if err != nil {
		return nil, err
	}
	cal := s.engine.MonthCalendar(snap.Habits, snap.Moods, year, month, today)
	s.observe("calendar", start)
	return &cal, nil
}

// Weekly reports the week ending at day, today when day is zero.
func (s *AnalyticsService) Weekly(ctx context.Context, day domain.Date) (*domain.WeeklyReport, error) {
	start := time.Now()
	if day.IsZero() {
		day = s.clock.Today()
	}

	snap, err := s.snapshot(ctx, day)
	if err != nil {
		return nil, err
	}
	report := s.engine.WeeklyProgress(snap, day)
	s.observe("weekly", start)
	return &report, nil
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	start := time.Now()
	now := s.clock.Now()

	snap, err := s.snapshot(ctx, s.engine.Today(now))
	if err != nil {
		return nil, err
	}
	goal, err := s.repos.Water.WaterGoal(ctx)
	if err != nil {
		return nil, err
	}
	dash := s.engine.Dashboard(snap, goal, now)
	s.observe("dashboard", start)
	return &dash, nil
}

// BestStreak is the figure the milestone worker checks after every toggle.
func (s *AnalyticsService) BestStreak(ctx context.Context, day domain.Date) (int, error) {
	habits, err := s.repos.Habits.ListHabits(ctx)
	if err != nil {
		return 0, err
	}
	return s.engine.BestStreak(habits, day), nil
}

// Milestones lists the streak tiers recorded by the milestone worker, in the
// order they were reached.
func (s *AnalyticsService) Milestones(ctx context.Context) ([]domain.Milestone, error) {
	if s.repos.Settings == nil {
		return []domain.Milestone{}, nil
	}
	return s.repos.Settings.Milestones(ctx)
}
