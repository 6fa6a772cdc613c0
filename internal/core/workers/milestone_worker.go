package workers

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const defaultQueueSize = 100

// MilestoneCounter is told about every newly recorded milestone.
type MilestoneCounter interface {
	MilestoneUnlocked()
}

type MilestoneJob struct {
	Day domain.Date
}

// MilestoneWorker re-evaluates streak tiers in the background after habit
// toggles and records the tiers reached for the first time.
type MilestoneWorker struct {
	habits   domain.HabitRepository
	settings domain.SettingsRepository
	engine   *analytics.Engine
	counter  MilestoneCounter
	log      *zap.Logger
	jobs     chan MilestoneJob

	// mu serialises read-modify-write of the milestones blob.
	mu sync.Mutex
	wg sync.WaitGroup
}

func NewMilestoneWorker(habits domain.HabitRepository, settings domain.SettingsRepository, engine *analytics.Engine, queueSize int, log *zap.Logger) *MilestoneWorker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MilestoneWorker{
		habits:   habits,
		settings: settings,
		engine:   engine,
		log:      log.Named("milestone_worker"),
		jobs:     make(chan MilestoneJob, queueSize),
	}
}

// WithCounter attaches a metrics hook; nil disables it.
func (w *MilestoneWorker) WithCounter(c MilestoneCounter) *MilestoneWorker {
	w.counter = c
	return w
}

func (w *MilestoneWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.log.Info("milestone worker started")
		for {
			select {
			case job := <-w.jobs:
				if _, err := w.Process(ctx, job.Day); err != nil {
					w.log.Error("milestone job failed", zap.String("day", job.Day.String()), zap.Error(err))
				}
			case <-ctx.Done():
				w.log.Info("milestone worker shutting down")
				return
			}
		}
	}()
}

// Wait blocks until the goroutine started by Start has returned.
func (w *MilestoneWorker) Wait() {
	w.wg.Wait()
}

// Enqueue never blocks; a full queue drops the job.
func (w *MilestoneWorker) Enqueue(day domain.Date) {
	select {
	case w.jobs <- MilestoneJob{Day: day}:
	default:
		w.log.Warn("milestone queue full, dropping job", zap.String("day", day.String()))
	}
}

// Process evaluates the best streak at day and stores every tier it reaches
// that was not recorded before. It returns the new milestones.
func (w *MilestoneWorker) Process(ctx context.Context, day domain.Date) ([]domain.Milestone, error) {
	habits, err := w.habits.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	best := w.engine.BestStreak(habits, day)
	if _, ok := w.engine.StreakAchievement(best); !ok {
		return nil, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	recorded, err := w.settings.Milestones(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(recorded))
	for _, m := range recorded {
		seen[m.AchievementID] = true
	}

	var unlocked []domain.Milestone
	tiers := analytics.StreakTiers()
	for i := len(tiers) - 1; i >= 0; i-- {
		tier := tiers[i]
		if best < tier.Threshold || seen[tier.ID] {
			continue
		}
		unlocked = append(unlocked, domain.Milestone{
			AchievementID: tier.ID,
			Title:         tier.Title,
			Streak:        best,
			ReachedOn:     day.String(),
		})
	}
	if len(unlocked) == 0 {
		return nil, nil
	}

	if err := w.settings.SaveMilestones(ctx, append(recorded, unlocked...)); err != nil {
		return nil, err
	}
	for _, m := range unlocked {
		w.log.Info("milestone unlocked", zap.String("achievement", m.AchievementID), zap.Int("streak", m.Streak))
		if w.counter != nil {
			w.counter.MilestoneUnlocked()
		}
	}
	return unlocked, nil
}
