package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

// Preference keys. They match the keys the mobile app wrote so an exported
// preferences file can be imported as is.
const (
	KeyHabits     = "habits_json"
	KeyMoods      = "moods_json"
	KeyGoals      = "goals_json"
	KeyMeditation = "meditation_sessions"
	KeyWaterGoal  = "water_daily_goal"
	KeyPINHash    = "app_pin_hash"
	KeyMilestones = "milestones_json"

	waterKeyPrefix = "water_"
)

func WaterKey(day domain.Date) string {
	return waterKeyPrefix + day.String()
}

var (
	_ domain.HabitRepository      = (*PreferenceRepository)(nil)
	_ domain.MoodRepository       = (*PreferenceRepository)(nil)
	_ domain.GoalRepository       = (*PreferenceRepository)(nil)
	_ domain.HydrationRepository  = (*PreferenceRepository)(nil)
	_ domain.MeditationRepository = (*PreferenceRepository)(nil)
	_ domain.SettingsRepository   = (*PreferenceRepository)(nil)
)

// PreferenceRepository gives typed access to the JSON blobs kept in a
// PreferenceStore. Every save rewrites the whole blob.
type PreferenceRepository struct {
	store domain.PreferenceStore
	log   *zap.Logger
}

func NewPreferenceRepository(store domain.PreferenceStore, log *zap.Logger) *PreferenceRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreferenceRepository{
		store: store,
		log:   log.Named("preferences"),
	}
}

// loadList decodes a JSON array blob. A missing key is an empty list, and so
// is a corrupt one: the damage is logged and the blob is left for the next
// save to overwrite.
func loadList[T any](ctx context.Context, r *PreferenceRepository, key string) ([]T, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		r.log.Warn("corrupt preference blob, treating as empty", zap.String("key", key), zap.Error(err))
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func saveList[T any](ctx context.Context, r *PreferenceRepository, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.store.Set(ctx, key, string(data))
}

func (r *PreferenceRepository) loadInt(ctx context.Context, key string, fallback int) (int, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.log.Warn("corrupt integer preference, using default", zap.String("key", key), zap.Error(err))
		return fallback, nil
	}
	return n, nil
}

func (r *PreferenceRepository) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	return loadList[domain.Habit](ctx, r, KeyHabits)
}

func (r *PreferenceRepository) SaveHabits(ctx context.Context, habits []domain.Habit) error {
	return saveList(ctx, r, KeyHabits, habits)
}

func (r *PreferenceRepository) ListMoods(ctx context.Context) ([]domain.MoodEntry, error) {
	return loadList[domain.MoodEntry](ctx, r, KeyMoods)
}

func (r *PreferenceRepository) SaveMoods(ctx context.Context, moods []domain.MoodEntry) error {
	return saveList(ctx, r, KeyMoods, moods)
}

func (r *PreferenceRepository) ClearMoods(ctx context.Context) error {
	return r.store.Delete(ctx, KeyMoods)
}

func (r *PreferenceRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return loadList[domain.Goal](ctx, r, KeyGoals)
}

func (r *PreferenceRepository) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	return saveList(ctx, r, KeyGoals, goals)
}

func (r *PreferenceRepository) ListSessions(ctx context.Context) ([]domain.MeditationSession, error) {
	return loadList[domain.MeditationSession](ctx, r, KeyMeditation)
}

func (r *PreferenceRepository) SaveSessions(ctx context.Context, sessions []domain.MeditationSession) error {
	return saveList(ctx, r, KeyMeditation, sessions)
}

func (r *PreferenceRepository) WaterIntake(ctx context.Context, day domain.Date) (int, error) {
	return r.loadInt(ctx, WaterKey(day), 0)
}

func (r *PreferenceRepository) SetWaterIntake(ctx context.Context, day domain.Date, glasses int) error {
	return r.store.Set(ctx, WaterKey(day), strconv.Itoa(glasses))
}

func (r *PreferenceRepository) WaterGoal(ctx context.Context) (int, error) {
	goal, err := r.loadInt(ctx, KeyWaterGoal, domain.DefaultWaterGoal)
	if err != nil {
		return 0, err
	}
	if domain.ValidateWaterGoal(goal) != nil {
		return domain.DefaultWaterGoal, nil
	}
	return goal, nil
}

func (r *PreferenceRepository) SetWaterGoal(ctx context.Context, glasses int) error {
	return r.store.Set(ctx, KeyWaterGoal, strconv.Itoa(glasses))
}

// PINHash returns "" when no PIN was set.
func (r *PreferenceRepository) PINHash(ctx context.Context) (string, error) {
	hash, err := r.store.Get(ctx, KeyPINHash)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return "", nil
	}
	return hash, err
}

func (r *PreferenceRepository) SetPINHash(ctx context.Context, hash string) error {
	if hash == "" {
		return r.store.Delete(ctx, KeyPINHash)
	}
	return r.store.Set(ctx, KeyPINHash, hash)
}

func (r *PreferenceRepository) Milestones(ctx context.Context) ([]domain.Milestone, error) {
	return loadList[domain.Milestone](ctx, r, KeyMilestones)
}

func (r *PreferenceRepository) SaveMilestones(ctx context.Context, milestones []domain.Milestone) error {
	return saveList(ctx, r, KeyMilestones, milestones)
}
