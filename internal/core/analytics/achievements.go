package analytics

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const (
	consistentStreak     = 7
	consistentHabitCount = 3
	mindfulMoodCount     = 7
	positiveMoodCount    = 5
	fewHabits            = 3
)

// streakTiers is ordered from the highest threshold down.
var streakTiers = []domain.Achievement{
	{ID: "month_master", Title: "Month Master", Threshold: 30},
	{ID: "two_week_warrior", Title: "Two Week Warrior", Threshold: 14},
	{ID: "week_champion", Title: "Week Champion", Threshold: 7},
	{ID: "getting_started", Title: "Getting Started", Threshold: 3},
}

var (
	multiTasker   = domain.Achievement{ID: "multi_tasker", Title: "Multi-tasker", Threshold: consistentHabitCount}
	mindfulLogger = domain.Achievement{ID: "mindful_logger", Title: "Mindful Logger", Threshold: mindfulMoodCount}
	wellnessGuru  = domain.Achievement{ID: "wellness_guru", Title: "Wellness Guru", Threshold: 10}
	growingGarden = domain.Achievement{ID: "growing_garden", Title: "Growing Garden", Threshold: 5}
)

const (
	InsightBestDay              = "best_day"
	InsightPositiveWeek         = "positive_week"
	InsightExcellentConsistency = "excellent_consistency"
	InsightBuildingMomentum     = "building_momentum"
	InsightAddMoreHabits        = "add_more_habits"
	InsightLogMoodToday         = "log_mood_today"
)

// StreakTiers returns the streak achievements from highest to lowest.
func StreakTiers() []domain.Achievement {
	out := make([]domain.Achievement, len(streakTiers))
	copy(out, streakTiers)
	return out
}

// StreakAchievement returns the highest tier the streak reaches. Below the
// lowest threshold there is none.
func (e *Engine) StreakAchievement(streak int) (domain.Achievement, bool) {
	for _, tier := range streakTiers {
		if streak >= tier.Threshold {
			return tier, true
		}
	}
	return domain.Achievement{}, false
}

func (e *Engine) Achievements(habits []domain.Habit, moods []domain.MoodEntry, now time.Time) []domain.Achievement {
	today := e.Today(now)
	out := make([]domain.Achievement, 0)

	if tier, ok := e.StreakAchievement(e.BestStreak(habits, today)); ok {
		out = append(out, tier)
	}

	consistent := 0
	for _, h := range habits {
		if e.CurrentStreak(h, today) >= consistentStreak {
			consistent++
		}
	}
	if consistent >= consistentHabitCount {
		out = append(out, multiTasker)
	}

	if e.WeeklyMoodCount(moods, now) >= mindfulMoodCount {
		out = append(out, mindfulLogger)
	}

	switch {
	case len(habits) >= wellnessGuru.Threshold:
		out = append(out, wellnessGuru)
	case len(habits) >= growingGarden.Threshold:
		out = append(out, growingGarden)
	}
	return out
}

// BestDayOfWeek buckets every completion by weekday. Habits are visited in
// order and their dates ascending; on a tie the weekday seen first wins.
func (e *Engine) BestDayOfWeek(habits []domain.Habit) (time.Weekday, bool) {
	counts := make(map[time.Weekday]int)
	order := make([]time.Weekday, 0, weekDays)
	for _, h := range habits {
		for _, d := range h.Dates() {
			wd := d.Weekday()
			if _, seen := counts[wd]; !seen {
				order = append(order, wd)
			}
			counts[wd]++
		}
	}
	if len(order) == 0 {
		return time.Sunday, false
	}

	best := order[0]
	for _, wd := range order[1:] {
		if counts[wd] > counts[best] {
			best = wd
		}
	}
	return best, true
}

func (e *Engine) Insights(habits []domain.Habit, moods []domain.MoodEntry, now time.Time) []domain.Insight {
	today := e.Today(now)
	out := make([]domain.Insight, 0)

	if wd, ok := e.BestDayOfWeek(habits); ok {
		out = append(out, domain.Insight{Code: InsightBestDay, Message: fmt.Sprintf("Your best day: %s", wd)})
	}

	positive := 0
	for _, m := range recentMoods(moods, now, weekDays) {
		if domain.IsPositiveMood(m.Emoji) {
			positive++
		}
	}
	if positive >= positiveMoodCount {
		out = append(out, domain.Insight{Code: InsightPositiveWeek, Message: "Great week! Mostly positive moods"})
	}

	if len(habits) > 0 {
		// Insights round the mean half up; the displayed average truncates.
		avg := roundRatio(e.streakSum(habits, today), len(habits))
		switch {
		case avg >= 7:
			out = append(out, domain.Insight{Code: InsightExcellentConsistency, Message: "Excellent consistency across habits!"})
		case avg >= 3:
			out = append(out, domain.Insight{Code: InsightBuildingMomentum, Message: "Building good momentum!"})
		}
	}

	if len(habits) < fewHabits {
		out = append(out, domain.Insight{Code: InsightAddMoreHabits, Message: "Try adding 2-3 more habits for better wellness"})
	}

	if len(recentMoods(moods, now, 1)) == 0 {
		out = append(out, domain.Insight{Code: InsightLogMoodToday, Message: "Don't forget to log your mood today!"})
	}
	return out
}
