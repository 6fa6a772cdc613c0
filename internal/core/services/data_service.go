package services

import (
	"context"
	"errors"
	"strings"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

// DataService works across the habit, mood and goal stores at once. It goes
// through the owning services so their write locks are honoured.
type DataService struct {
	habits *HabitService
	moods  *MoodService
	goals  *GoalService
	engine *analytics.Engine
	clock  Clock
}

func NewDataService(habits *HabitService, moods *MoodService, goals *GoalService, clock Clock) *DataService {
	return &DataService{
		habits: habits,
		moods:  moods,
		goals:  goals,
		engine: analytics.New(clock.Location),
		clock:  clock,
	}
}

// Search matches habit names and mood notes case-insensitively. Habits come
// in stored order with their streak at today, moods newest first.
func (s *DataService) Search(ctx context.Context, query string) (domain.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchResults{}, domain.ErrSearchQueryEmpty
	}
	needle := strings.ToLower(query)

	habits, err := s.habits.List(ctx)
	if err != nil {
		return domain.SearchResults{}, err
	}
	moods, err := s.moods.List(ctx)
	if err != nil {
		return domain.SearchResults{}, err
	}

	out := domain.SearchResults{
		Query:  query,
		Habits: []domain.HabitMatch{},
		Moods:  []domain.MoodMatch{},
	}
	today := s.clock.Today()
	for _, h := range habits {
		if strings.Contains(strings.ToLower(h.Name), needle) {
			out.Habits = append(out.Habits, domain.HabitMatch{
				Name:   h.Name,
				Streak: s.engine.CurrentStreak(h, today),
			})
		}
	}
	for _, m := range moods {
		if strings.Contains(strings.ToLower(m.Note), needle) {
			out.Moods = append(out.Moods, domain.MoodMatch{
				Emoji:     m.Emoji,
				Note:      m.Note,
				Date:      domain.DateOf(m.Time(), s.clock.Location),
				Timestamp: m.Timestamp,
			})
		}
	}
	return out, nil
}

// ClearAll drops habits, moods and goals. Water, meditation, the PIN and
// recorded milestones are kept. Every store is attempted even when one fails.
func (s *DataService) ClearAll(ctx context.Context) error {
	return errors.Join(
		s.habits.Clear(ctx),
		s.moods.Clear(ctx),
		s.goals.Clear(ctx),
	)
}
