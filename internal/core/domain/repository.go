package domain

import (
	"context"
	"errors"
)

var (
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrHabitExists        = errors.New("habit with this name already exists")
)

// PreferenceStore is a flat key-value store of string blobs. Every mutation
// rewrites the whole value of a key.
type PreferenceStore interface {
	// Get returns ErrPreferenceNotFound when the key was never written.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type HabitRepository interface {
	ListHabits(ctx context.Context) ([]Habit, error)
	SaveHabits(ctx context.Context, habits []Habit) error
}

type MoodRepository interface {
	ListMoods(ctx context.Context) ([]MoodEntry, error)
	SaveMoods(ctx context.Context, moods []MoodEntry) error
	ClearMoods(ctx context.Context) error
}

type GoalRepository interface {
	ListGoals(ctx context.Context) ([]Goal, error)
	SaveGoals(ctx context.Context, goals []Goal) error
}

type HydrationRepository interface {
	// WaterIntake returns glasses drunk on day, 0 if nothing was logged.
	WaterIntake(ctx context.Context, day Date) (int, error)
	SetWaterIntake(ctx context.Context, day Date, glasses int) error
	// WaterGoal returns DefaultWaterGoal when no goal was set.
	WaterGoal(ctx context.Context) (int, error)
	SetWaterGoal(ctx context.Context, glasses int) error
}

type MeditationRepository interface {
	ListSessions(ctx context.Context) ([]MeditationSession, error)
	SaveSessions(ctx context.Context, sessions []MeditationSession) error
}

type SettingsRepository interface {
	PINHash(ctx context.Context) (string, error)
	SetPINHash(ctx context.Context, hash string) error
	Milestones(ctx context.Context) ([]Milestone, error)
	SaveMilestones(ctx context.Context, milestones []Milestone) error
}
