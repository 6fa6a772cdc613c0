package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const historyDays = 7

type WellnessService struct {
	water      domain.HydrationRepository
	meditation domain.MeditationRepository
	engine     *analytics.Engine
	clock      Clock

	waterMu      sync.Mutex
	meditationMu sync.Mutex
}

func NewWellnessService(water domain.HydrationRepository, meditation domain.MeditationRepository, clock Clock) *WellnessService {
	return &WellnessService{
		water:      water,
		meditation: meditation,
		engine:     analytics.New(clock.Location),
		clock:      clock,
	}
}

func (s *WellnessService) AddGlasses(ctx context.Context, glasses int) (domain.Hydration, error) {
	if glasses <= 0 {
		return domain.Hydration{}, domain.ErrInvalidWaterAmount
	}
	return s.adjustWater(ctx, glasses)
}

// AddMillilitres converts to whole glasses, dropping the remainder.
func (s *WellnessService) AddMillilitres(ctx context.Context, ml int) (domain.Hydration, error) {
	glasses := domain.GlassesFromMillilitres(ml)
	if glasses <= 0 {
		return domain.Hydration{}, domain.ErrInvalidWaterAmount
	}
	return s.adjustWater(ctx, glasses)
}

// RemoveGlass undoes one glass; intake never goes below zero.
func (s *WellnessService) RemoveGlass(ctx context.Context) (domain.Hydration, error) {
	return s.adjustWater(ctx, -1)
}

func (s *WellnessService) adjustWater(ctx context.Context, delta int) (domain.Hydration, error) {
	today := s.clock.Today()

	s.waterMu.Lock()
	current, err := s.water.WaterIntake(ctx, today)
	if err == nil {
		next := current + delta
		if next < 0 {
			next = 0
		}
		err = s.water.SetWaterIntake(ctx, today, next)
	}
	s.waterMu.Unlock()
	if err != nil {
		return domain.Hydration{}, err
	}

	return s.Hydration(ctx, today)
}

func (s *WellnessService) SetDailyGoal(ctx context.Context, glasses int) error {
	if err := domain.ValidateWaterGoal(glasses); err != nil {
		return err
	}
	return s.water.SetWaterGoal(ctx, glasses)
}

// Hydration reports intake for day, today when day is zero, with a week of
// history ending at it.
func (s *WellnessService) Hydration(ctx context.Context, day domain.Date) (domain.Hydration, error) {
	if day.IsZero() {
		day = s.clock.Today()
	}
	goal, err := s.water.WaterGoal(ctx)
	if err != nil {
		return domain.Hydration{}, err
	}
	history, err := loadWater(ctx, s.water, day, historyDays)
	if err != nil {
		return domain.Hydration{}, err
	}
	return s.engine.Hydration(history, goal, day), nil
}

type RecordSessionInput struct {
	Type      string
	Minutes   int
	Start     time.Time
	Completed bool
}

func (s *WellnessService) RecordSession(ctx context.Context, input RecordSessionInput) (domain.MeditationSession, error) {
	start := input.Start
	if start.IsZero() {
		start = s.clock.Now()
	}
	session, err := domain.NewMeditationSession(input.Type, input.Minutes, start, input.Completed)
	if err != nil {
		return domain.MeditationSession{}, err
	}

	s.meditationMu.Lock()
	defer s.meditationMu.Unlock()

	sessions, err := s.meditation.ListSessions(ctx)
	if err != nil {
		return domain.MeditationSession{}, err
	}
	if err := s.meditation.SaveSessions(ctx, append(sessions, session)); err != nil {
		return domain.MeditationSession{}, err
	}
	return session, nil
}

// Sessions returns recorded sessions newest first.
func (s *WellnessService) Sessions(ctx context.Context) ([]domain.MeditationSession, error) {
	sessions, err := s.meditation.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime > sessions[j].StartTime
	})
	return sessions, nil
}

func (s *WellnessService) MeditationSummary(ctx context.Context, day domain.Date) (domain.MeditationSummary, error) {
	if day.IsZero() {
		day = s.clock.Today()
	}
	sessions, err := s.meditation.ListSessions(ctx)
	if err != nil {
		return domain.MeditationSummary{}, err
	}
	return s.engine.MeditationSummary(sessions, day), nil
}

// loadWater reads the n days ending at last.
func loadWater(ctx context.Context, repo domain.HydrationRepository, last domain.Date, n int) (map[domain.Date]int, error) {
	out := make(map[domain.Date]int, n)
	for i := 0; i < n; i++ {
		d := last.AddDays(-i)
		glasses, err := repo.WaterIntake(ctx, d)
		if err != nil {
			return nil, err
		}
		if glasses > 0 {
			out[d] = glasses
		}
	}
	return out, nil
}
