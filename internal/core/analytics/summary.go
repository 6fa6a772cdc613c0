package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

// Summary evaluates every analytics figure against one snapshot at now.
func (e *Engine) Summary(s domain.Snapshot, now time.Time) domain.AnalyticsSummary {
	today := e.Today(now)
	trend := e.MoodTrend(s.Moods, now)

	return domain.AnalyticsSummary{
		Date:             today,
		TotalHabits:      len(s.Habits),
		WeeklyRate:       e.WeeklyCompletionRate(s.Habits, today),
		MonthlyRate:      e.MonthlyCompletionRate(s.Habits, today.Year(), today.Month()),
		MoodTrend:        trend,
		MoodDirection:    e.ClassifyTrend(trend),
		BestStreak:       e.BestStreak(s.Habits, today),
		AverageStreak:    e.AverageStreak(s.Habits, today),
		ActivityStreak:   e.ActivityStreak(s.Habits, today),
		PerfectStreak:    e.PerfectStreak(s.Habits, today),
		LongestStreak:    e.LongestStreak(s.Habits),
		WeeklyMoodCount:  e.WeeklyMoodCount(s.Moods, now),
		MoodDistribution: e.MoodDistribution(s.Moods, now),
		Achievements:     e.Achievements(s.Habits, s.Moods, now),
		Insights:         e.Insights(s.Habits, s.Moods, now),
	}
}

func (e *Engine) Dashboard(s domain.Snapshot, waterGoal int, now time.Time) domain.Dashboard {
	today := e.Today(now)
	return domain.Dashboard{
		Date:              today,
		HabitCompletion:   e.DailyCompletionRate(s.Habits, today),
		WaterGlasses:      s.Water[today],
		WaterGoal:         waterGoal,
		MeditationMinutes: e.MeditationMinutesOn(s.Meditation, today),
		PerfectStreak:     e.PerfectStreak(s.Habits, today),
		WeeklyRate:        e.WeeklyCompletionRate(s.Habits, today),
		MoodDirection:     e.ClassifyTrend(e.MoodTrend(s.Moods, now)),
	}
}
