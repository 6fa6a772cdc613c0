package services

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

type GoalService struct {
	repo  domain.GoalRepository
	clock Clock
	mu    sync.Mutex
}

func NewGoalService(repo domain.GoalRepository, clock Clock) *GoalService {
	return &GoalService{
		repo:  repo,
		clock: clock,
	}
}

type CreateGoalInput struct {
	Title       string
	Description string
	// TargetDays of 0 derives the target from the title.
	TargetDays int
}

func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.repo.ListGoals(ctx)
}

// Clear removes every goal, joined challenges included.
func (s *GoalService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveGoals(ctx, []domain.Goal{})
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input.Title, input.Description, input.TargetDays, s.clock.Today())
	if err != nil {
		return nil, err
	}
	if err := s.append(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Advance adds one day of progress. The bool reports whether this call
// completed the goal.
func (s *GoalService) Advance(ctx context.Context, id string) (*domain.Goal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, false, err
	}
	idx := findGoal(goals, id)
	if idx < 0 {
		return nil, false, domain.ErrGoalNotFound
	}

	completed := goals[idx].Advance()
	if err := s.repo.SaveGoals(ctx, goals); err != nil {
		return nil, false, err
	}
	goal := goals[idx]
	return &goal, completed, nil
}

func (s *GoalService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return err
	}
	idx := findGoal(goals, id)
	if idx < 0 {
		return domain.ErrGoalNotFound
	}
	return s.repo.SaveGoals(ctx, append(goals[:idx], goals[idx+1:]...))
}

func (s *GoalService) Challenges() []domain.Challenge {
	return domain.Challenges()
}

// Join turns a catalogue challenge into a regular goal.
func (s *GoalService) Join(ctx context.Context, challengeID string) (*domain.Goal, error) {
	c, err := domain.FindChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	goal := domain.GoalFromChallenge(c, s.clock.Now(), s.clock.Location)
	if err := s.append(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) append(ctx context.Context, goal *domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return err
	}
	return s.repo.SaveGoals(ctx, append(goals, *goal))
}

func findGoal(goals []domain.Goal, id string) int {
	for i, g := range goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
